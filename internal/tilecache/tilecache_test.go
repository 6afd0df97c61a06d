package tilecache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStorePutAndLoadTagsType(t *testing.T) {
	store := newTestStore(t)

	err := store.Put(models.TileFloor, []models.Product{
		{ID: 1, Design: "Marble"},
		{ID: 2, Design: "Granite"},
	})
	require.NoError(t, err)

	tiles := store.Load(models.TileFloor)
	require.Len(t, tiles, 2)
	for _, tile := range tiles {
		assert.Equal(t, models.TileFloor, tile.Type)
	}
	assert.Equal(t, "Marble", tiles[0].Design)
}

func TestStoreLoadMissingOrCorruptReadsEmpty(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Load(models.TileWall))

	require.NoError(t, os.WriteFile(store.path(models.TileWall), []byte("{nope"), 0o644))
	assert.Empty(t, store.Load(models.TileWall))
}

func TestStoreKeepsTypesSeparate(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Put(models.TileFloor, []models.Product{{ID: 1, Design: "F"}}))
	require.NoError(t, store.Put(models.TileWall, []models.Product{{ID: 2, Design: "W"}}))

	assert.Len(t, store.Load(models.TileFloor), 1)
	assert.Len(t, store.Load(models.TileWall), 1)

	all := store.LoadAll()
	require.Len(t, all, 2)
	assert.Equal(t, models.TileFloor, all[0].Type)
	assert.Equal(t, models.TileWall, all[1].Type)
}

func TestStoreEmptyFallsBackToSamples(t *testing.T) {
	store := newTestStore(t)

	all := store.LoadAll()
	require.Len(t, all, len(SampleTiles()))
	assert.Equal(t, "Marble White", all[0].Design)

	// One cached tile is enough to suppress the samples.
	require.NoError(t, store.Put(models.TileWall, []models.Product{{ID: 9, Design: "Real"}}))
	all = store.LoadAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Real", all[0].Design)
}

func TestStoreFilesPerType(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(models.TileFloor, nil))
	_, err = os.Stat(filepath.Join(dir, "floor.json"))
	assert.NoError(t, err)
}
