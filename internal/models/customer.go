package models

import "time"

// RoomItem is a single tile line within a room estimate. Wall tile lines
// carry the dark/light/highlight box breakdown; floor lines leave it zero.
type RoomItem struct {
	Type           string  `bson:"type" json:"type"`
	Design         string  `bson:"design,omitempty" json:"design,omitempty"`
	Area           float64 `bson:"area" json:"area"`
	Boxes          float64 `bson:"boxes" json:"boxes"`
	Price          float64 `bson:"price" json:"price"`
	Cost           float64 `bson:"cost" json:"cost"`
	Weight         float64 `bson:"weight" json:"weight"`
	Description    string  `bson:"description,omitempty" json:"description,omitempty"`
	DarkBoxes      float64 `bson:"darkBoxes,omitempty" json:"darkBoxes,omitempty"`
	LightBoxes     float64 `bson:"lightBoxes,omitempty" json:"lightBoxes,omitempty"`
	HighlightBoxes float64 `bson:"highlightBoxes,omitempty" json:"highlightBoxes,omitempty"`
	TilesPerWidth  float64 `bson:"tilesPerWidth,omitempty" json:"tilesPerWidth,omitempty"`
	TilesPerLength float64 `bson:"tilesPerLength,omitempty" json:"tilesPerLength,omitempty"`
}

// Room is one room entry inside a customer order.
type Room struct {
	Name        string     `bson:"name" json:"name"`
	AreaType    string     `bson:"areaType,omitempty" json:"areaType,omitempty"`
	TotalArea   float64    `bson:"totalArea" json:"totalArea"`
	TotalCost   float64    `bson:"totalCost" json:"totalCost"`
	TotalWeight float64    `bson:"totalWeight" json:"totalWeight"`
	Items       []RoomItem `bson:"items" json:"items"`
}

// Customer is a finalized order aggregate. Rooms and items are owned
// exclusively by the customer document; there is no update or delete
// operation once it is stored.
type Customer struct {
	Fullname       string    `bson:"fullname" json:"fullname"`
	Phone          string    `bson:"phone" json:"phone"`
	Address        string    `bson:"address" json:"address"`
	Attender       string    `bson:"attender" json:"attender"`
	AttenderPhone  string    `bson:"attenderPhone" json:"attenderPhone"`
	TotalAmount    float64   `bson:"totalAmount" json:"totalAmount"`
	TotalArea      float64   `bson:"totalArea" json:"totalArea"`
	TotalWeight    float64   `bson:"totalWeight" json:"totalWeight"`
	LoadingCharges float64   `bson:"loadingCharges" json:"loadingCharges"`
	TotalTileCost  float64   `bson:"totalTileCost" json:"totalTileCost"`
	Rooms          []Room    `bson:"rooms" json:"rooms"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
