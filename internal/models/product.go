package models

import "time"

// TileType tags which surface a catalog tile is sold for.
type TileType string

const (
	TileFloor TileType = "floor"
	TileWall  TileType = "wall"
)

func (t TileType) Valid() bool {
	return t == TileFloor || t == TileWall
}

// Product is a catalog tile. Records are immutable once stored; the only
// lifecycle operations are create and delete by id.
type Product struct {
	ID        FlexID    `bson:"id" json:"id"`
	Type      TileType  `bson:"type" json:"type"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"` // base64 blob
	Size      string    `bson:"size,omitempty" json:"size,omitempty"`
	Design    string    `bson:"design" json:"design"`
	Amount    float64   `bson:"amount" json:"amount"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
