package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/geometry"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

func floorTile(design string) models.Product {
	return models.Product{ID: 1, Type: models.TileFloor, Design: design, Amount: 100}
}

func wallTile(id int64, design string) models.Product {
	return models.Product{ID: models.FlexID(id), Type: models.TileWall, Design: design, Amount: 100}
}

func TestPickerFloorAppliesDirectly(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.Open(models.TileFloor))
	require.Equal(t, StatePicking, p.State())

	require.NoError(t, p.Pick(floorTile("Marble")))
	assert.Equal(t, StateIdle, p.State())
	require.NotNil(t, p.Floor())
	assert.Equal(t, "Marble", p.Floor().Design)

	for _, face := range geometry.WallFaces() {
		assert.Nil(t, p.Wall(face))
	}
}

func TestPickerWallWaitsForScope(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(2, "Wood")))
	assert.Equal(t, StatePendingWall, p.State())

	// Nothing applied yet.
	for _, face := range geometry.WallFaces() {
		assert.Nil(t, p.Wall(face))
	}

	require.NoError(t, p.ApplyWall(ScopeFront))
	assert.Equal(t, StateIdle, p.State())
	require.NotNil(t, p.Wall(geometry.WallFront))
	assert.Equal(t, "Wood", p.Wall(geometry.WallFront).Design)
	assert.Nil(t, p.Wall(geometry.WallBack))
}

func TestPickerScopeAllOverwritesEveryFace(t *testing.T) {
	p := NewPicker()

	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(2, "Wood")))
	require.NoError(t, p.ApplyWall(ScopeLeft))

	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(3, "Stone")))
	require.NoError(t, p.ApplyWall(ScopeAll))

	for _, face := range geometry.WallFaces() {
		require.NotNil(t, p.Wall(face), "%s", face)
		assert.Equal(t, "Stone", p.Wall(face).Design, "%s", face)
	}
}

func TestPickerCancelDiscardsPending(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(2, "Wood")))

	p.Cancel()
	assert.Equal(t, StateIdle, p.State())
	for _, face := range geometry.WallFaces() {
		assert.Nil(t, p.Wall(face))
	}
	assert.ErrorIs(t, p.ApplyWall(ScopeAll), ErrNoPendingTile)
}

func TestPickerErrors(t *testing.T) {
	p := NewPicker()

	assert.ErrorIs(t, p.Pick(floorTile("x")), ErrNotPicking)
	assert.ErrorIs(t, p.ApplyWall(ScopeAll), ErrNoPendingTile)
	assert.Error(t, p.Open(models.TileType("ceiling")))

	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(2, "Wood")))
	assert.ErrorIs(t, p.ApplyWall(WallScope("roof")), ErrInvalidScope)
	// The pending tile survives an invalid scope and can still be applied.
	require.NoError(t, p.ApplyWall(ScopeBack))
}

func TestPickerResetClearsEverything(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.Open(models.TileFloor))
	require.NoError(t, p.Pick(floorTile("Marble")))
	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(2, "Wood")))
	require.NoError(t, p.ApplyWall(ScopeAll))

	p.Reset()
	assert.Nil(t, p.Floor())
	for _, face := range geometry.WallFaces() {
		assert.Nil(t, p.Wall(face))
	}
	assert.Equal(t, StateIdle, p.State())
}

func TestPickerSnapshotIsDetached(t *testing.T) {
	p := NewPicker()
	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(2, "Wood")))
	require.NoError(t, p.ApplyWall(ScopeAll))

	snap := p.Snapshot(geometry.Dimensions{Width: 10, Length: 10, Height: 9}, geometry.Kitchen, 0)
	require.NotNil(t, snap.Walls[geometry.WallFront])

	// A later pick must not show through the earlier snapshot.
	require.NoError(t, p.Open(models.TileWall))
	require.NoError(t, p.Pick(wallTile(3, "Stone")))
	require.NoError(t, p.ApplyWall(ScopeFront))

	assert.Equal(t, "Wood", snap.Walls[geometry.WallFront].Design)
}
