// Package geometry computes the parametric room model the 3D visualizer
// renders: panel extents for the floor and four walls, texture repeat
// factors, camera framing and the furnishing prop layout per room type.
// Everything here is a pure function of the submitted dimensions.
package geometry

import "math"

// RoomType selects the furnishing set composed into the scene.
type RoomType string

const (
	Kitchen    RoomType = "Kitchen"
	Bedroom    RoomType = "Bedroom"
	Bathroom   RoomType = "Bathroom"
	LivingRoom RoomType = "Living Room"
	Balcony    RoomType = "Balcony"
	Parking    RoomType = "Parking"
)

const (
	// DefaultScale converts feet to scene units.
	DefaultScale = 0.12

	// WallThickness is fixed in scene units regardless of room size.
	WallThickness = 0.06

	// tileSpanFt is the assumed real-world span of one tile plus grout.
	// Texture repeats divide the un-scaled panel dimension by this span.
	tileSpanFt = 3.0

	minDimensionFt = 1.0
)

// Vec3 is an x, y, z triple in scene units.
type Vec3 [3]float64

// Dimensions is the submitted room size in feet.
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Clamped floors every dimension at one foot so degenerate input can never
// produce a zero-area or inverted panel.
func (d Dimensions) Clamped() Dimensions {
	return Dimensions{
		Width:  math.Max(minDimensionFt, d.Width),
		Length: math.Max(minDimensionFt, d.Length),
		Height: math.Max(minDimensionFt, d.Height),
	}
}

// Area is the floor area in square feet, after clamping.
func (d Dimensions) Area() float64 {
	c := d.Clamped()
	return c.Width * c.Length
}

// WallFace keys the four wall slots.
type WallFace string

const (
	WallFront WallFace = "front"
	WallBack  WallFace = "back"
	WallLeft  WallFace = "left"
	WallRight WallFace = "right"
)

// WallFaces returns the four faces in stable composition order.
func WallFaces() [4]WallFace {
	return [4]WallFace{WallBack, WallFront, WallLeft, WallRight}
}

// Panel is one renderable surface. Size and Position are in scene units;
// FaceWidthFt and FaceHeightFt keep the un-scaled face dimensions in feet,
// which is what texture repeat math must use.
type Panel struct {
	Size         Vec3
	Position     Vec3
	Rotation     Vec3
	FaceWidthFt  float64
	FaceHeightFt float64
}

// Repeats returns the texture repeat counts for this panel's face.
func (p Panel) Repeats() (int, int) {
	return TextureRepeat(p.FaceWidthFt, p.FaceHeightFt)
}

// Camera frames the whole room on first render.
type Camera struct {
	Position      Vec3
	Target        Vec3
	MinDistance   float64
	MaxDistance   float64
	DampingFactor float64
}

// RoomModel is the full parametric model for one set of dimensions.
type RoomModel struct {
	Dims       Dimensions // clamped, in feet
	Scale      float64
	Floor      Panel
	Walls      map[WallFace]Panel
	Camera     Camera
	GridExtent float64
}

// TextureRepeat converts a face size in feet to repeat counts along each
// axis: dimension divided by the tile-plus-grout span, rounded to nearest,
// never below one. Callers must pass feet, not scene units.
func TextureRepeat(widthFt, heightFt float64) (int, int) {
	return repeatFor(widthFt), repeatFor(heightFt)
}

func repeatFor(ft float64) int {
	r := int(math.Round(ft / tileSpanFt))
	if r < 1 {
		return 1
	}
	return r
}

// Build computes the room model from submitted dimensions. A zero or
// negative scale falls back to DefaultScale.
func Build(dims Dimensions, scale float64) RoomModel {
	if scale <= 0 {
		scale = DefaultScale
	}

	d := dims.Clamped()
	w := d.Width * scale
	l := d.Length * scale
	h := d.Height * scale

	floor := Panel{
		Size:         Vec3{w, l, 0},
		Position:     Vec3{0, 0, 0},
		Rotation:     Vec3{-math.Pi / 2, 0, 0},
		FaceWidthFt:  d.Width,
		FaceHeightFt: d.Length,
	}

	walls := map[WallFace]Panel{
		WallBack: {
			Size:         Vec3{w, h, WallThickness},
			Position:     Vec3{0, h / 2, -l / 2},
			FaceWidthFt:  d.Width,
			FaceHeightFt: d.Height,
		},
		WallFront: {
			Size:         Vec3{w, h, WallThickness},
			Position:     Vec3{0, h / 2, l / 2},
			FaceWidthFt:  d.Width,
			FaceHeightFt: d.Height,
		},
		WallLeft: {
			Size:         Vec3{WallThickness, h, l},
			Position:     Vec3{-w / 2, h / 2, 0},
			FaceWidthFt:  d.Length,
			FaceHeightFt: d.Height,
		},
		WallRight: {
			Size:         Vec3{WallThickness, h, l},
			Position:     Vec3{w / 2, h / 2, 0},
			FaceWidthFt:  d.Length,
			FaceHeightFt: d.Height,
		},
	}

	diag := math.Max(w, l) * 1.8
	camera := Camera{
		Position:      Vec3{diag, h*1.2 + 0.2, diag},
		Target:        Vec3{0, h * 0.45, 0},
		MinDistance:   0.1,
		MaxDistance:   math.Max(w, l) * 6,
		DampingFactor: 0.08,
	}

	return RoomModel{
		Dims:       d,
		Scale:      scale,
		Floor:      floor,
		Walls:      walls,
		Camera:     camera,
		GridExtent: math.Max(w, l) * 1.2,
	}
}
