// Package tilecache is the durable local catalog cache the visualizer
// falls back to when the server catalog is empty: one JSON file per tile
// type, keyed the same way the browser kept its localStorage entries.
package tilecache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create tile cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(t models.TileType) string {
	return filepath.Join(s.dir, string(t)+".json")
}

// Put replaces the cached tiles for one type.
func (s *Store) Put(t models.TileType, tiles []models.Product) error {
	data, err := json.MarshalIndent(tiles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s cache: %w", t, err)
	}
	if err := os.WriteFile(s.path(t), data, 0o644); err != nil {
		return fmt.Errorf("write %s cache: %w", t, err)
	}
	return nil
}

// Load returns the cached tiles for one type, tagged with that type. A
// missing or corrupt cache file reads as empty.
func (s *Store) Load(t models.TileType) []models.Product {
	data, err := os.ReadFile(s.path(t))
	if err != nil {
		return nil
	}
	var tiles []models.Product
	if err := json.Unmarshal(data, &tiles); err != nil {
		return nil
	}
	for i := range tiles {
		tiles[i].Type = t
	}
	return tiles
}

// LoadAll merges both cached collections, falling back to the built-in
// sample tiles when neither has anything, so the picker always has
// something to show.
func (s *Store) LoadAll() []models.Product {
	tiles := append(s.Load(models.TileFloor), s.Load(models.TileWall)...)
	if len(tiles) > 0 {
		return tiles
	}
	return SampleTiles()
}

// SampleTiles is the default catalog shown before any tile is uploaded.
func SampleTiles() []models.Product {
	return []models.Product{
		{
			Image:  "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?auto=format&fit=crop&w=200&q=80",
			Design: "Marble White",
			Size:   "2x2",
			Amount: 120,
			Type:   models.TileFloor,
		},
		{
			Image:  "https://images.unsplash.com/photo-1517482439563-71887e0b5722?auto=format&fit=crop&w=200&q=80",
			Design: "Granite Grey",
			Size:   "2x2",
			Amount: 140,
			Type:   models.TileFloor,
		},
		{
			Image:  "https://images.unsplash.com/photo-1616486338812-3dadae4b4f9d?auto=format&fit=crop&w=200&q=80",
			Design: "Wood Finish",
			Size:   "4x1",
			Amount: 180,
			Type:   models.TileWall,
		},
	}
}
