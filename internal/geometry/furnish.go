package geometry

import "math"

// Shape selects the primitive a prop renders as. Size is interpreted per
// shape: box {x,y,z}, cylinder {topRadius,bottomRadius,height},
// cone {radius,height,segments}, sphere {radius}, plane {width,height}.
type Shape string

const (
	ShapeBox      Shape = "box"
	ShapeCylinder Shape = "cylinder"
	ShapeCone     Shape = "cone"
	ShapeSphere   Shape = "sphere"
	ShapePlane    Shape = "plane"
)

// Prop is one static furnishing element. Props carry no persisted state;
// the layout is recomputed from current dimensions on every change.
type Prop struct {
	Name      string
	Shape     Shape
	Size      Vec3
	Position  Vec3
	Rotation  Vec3
	Color     string
	Metalness float64
	Roughness float64
	Opacity   float64 // 0 means opaque
	Unlit     bool    // flat color, ignores lighting (parking strips)
}

// Furnishings returns the fixed prop layout for a room type, positioned
// and sized proportionally to the room extents. Unknown room types get an
// empty layout.
func Furnishings(roomType RoomType, dims Dimensions, scale float64) []Prop {
	if scale <= 0 {
		scale = DefaultScale
	}
	d := dims.Clamped()
	w := d.Width * scale
	l := d.Length * scale
	h := d.Height * scale

	switch roomType {
	case Kitchen:
		return kitchenProps(w, l, h, scale)
	case Bedroom:
		return bedroomProps(w, l, scale)
	case Bathroom:
		return bathroomProps(w, l, h, scale)
	case LivingRoom:
		return livingRoomProps(w, l, scale)
	case Balcony:
		return balconyProps(w, l, scale)
	case Parking:
		return parkingProps(w, l)
	default:
		return nil
	}
}

func kitchenProps(w, l, h, s float64) []Prop {
	counterH := 3 * s
	counterD := 2.1 * s
	upperH := 2.5 * s
	upperD := 1.1 * s

	props := []Prop{
		{
			Name: "lower cabinets", Shape: ShapeBox,
			Size:     Vec3{w, counterH, counterD},
			Position: Vec3{0, counterH / 2, -l/2 + counterD/2},
			Color:    "#3E2723", Roughness: 0.8,
		},
		{
			Name: "countertop", Shape: ShapeBox,
			Size:     Vec3{w, 0.02, counterD + 0.02},
			Position: Vec3{0, counterH + 0.01, -l/2 + counterD/2},
			Color:    "#eceff1", Roughness: 0.2, Metalness: 0.1,
		},
		{
			Name: "upper cabinets", Shape: ShapeBox,
			Size:     Vec3{w, upperH, upperD},
			Position: Vec3{0, h - upperH/2 - 0.5*s, -l/2 + upperD/2},
			Color:    "#ffffff", Roughness: 0.5,
		},
		{
			Name: "sink", Shape: ShapeBox,
			Size:     Vec3{2.5 * s, 0.01, 1.5 * s},
			Position: Vec3{-w * 0.25, counterH + 0.025, -l/2 + counterD/2},
			Color:    "#555", Metalness: 0.8, Roughness: 0.2,
		},
		{
			Name: "faucet spout", Shape: ShapeCylinder,
			Size:     Vec3{0.02, 0.02, 0.3},
			Position: Vec3{-w * 0.25, counterH + 0.03 + 0.15, -l/2 + counterD*0.2},
			Color:    "silver",
		},
		{
			Name: "faucet head", Shape: ShapeCylinder,
			Size:     Vec3{0.015, 0.015, 0.15},
			Position: Vec3{-w * 0.25, counterH + 0.03 + 0.3, -l/2 + counterD*0.2 + 0.08},
			Rotation: Vec3{math.Pi / 4, 0, 0},
			Color:    "silver",
		},
		{
			Name: "stove", Shape: ShapeBox,
			Size:     Vec3{2.5 * s, 0.02, 1.8 * s},
			Position: Vec3{w * 0.2, counterH + 0.025, -l/2 + counterD/2},
			Color:    "#111", Roughness: 0.2,
		},
		{
			Name: "chimney hood", Shape: ShapeCone,
			Size:     Vec3{1.5 * s, 1.5 * s, 4},
			Position: Vec3{w * 0.2, h - upperH - 0.8*s, -l/2 + counterD/2},
			Color:    "#333", Metalness: 0.6,
		},
		{
			Name: "pot", Shape: ShapeCylinder,
			Size:     Vec3{0.05, 0.04, 0.08},
			Position: Vec3{w * 0.25, counterH + 0.06, -l/2 + counterD/2 + 0.05},
			Color:    "#bf360c",
		},
		{
			Name: "pan", Shape: ShapeCylinder,
			Size:     Vec3{0.06, 0.05, 0.03},
			Position: Vec3{w * 0.15, counterH + 0.03, -l/2 + counterD/2 - 0.05},
			Color:    "#333",
		},
		{
			Name: "pan handle", Shape: ShapeCylinder,
			Size:     Vec3{0.01, 0.01, 0.15},
			Position: Vec3{w*0.15 + 0.1, counterH + 0.03, -l/2 + counterD/2 - 0.05},
			Rotation: Vec3{0, 0, -math.Pi / 2},
			Color:    "#333",
		},
	}
	return props
}

func bedroomProps(w, l, s float64) []Prop {
	return []Prop{
		{
			Name: "bed frame", Shape: ShapeBox,
			Size:     Vec3{w * 0.5, s * 3, l * 0.6},
			Position: Vec3{0, s * 1.5, -l * 0.2},
			Color:    "#5D4037",
		},
		{
			Name: "mattress", Shape: ShapeBox,
			Size:     Vec3{w * 0.45, s, l * 0.55},
			Position: Vec3{0, s*3 + s*0.5, -l * 0.2},
			Color:    "#FFF",
		},
		{
			Name: "pillow left", Shape: ShapeBox,
			Size:     Vec3{s * 2, s * 0.5, s},
			Position: Vec3{-w * 0.1, s * 4, -l * 0.4},
			Color:    "#DDD",
		},
		{
			Name: "pillow right", Shape: ShapeBox,
			Size:     Vec3{s * 2, s * 0.5, s},
			Position: Vec3{w * 0.1, s * 4, -l * 0.4},
			Color:    "#DDD",
		},
		{
			Name: "side table left", Shape: ShapeBox,
			Size:     Vec3{s * 1.5, s * 3, s * 1.5},
			Position: Vec3{-w * 0.35, s * 1.5, -l * 0.4},
			Color:    "#4E342E",
		},
		{
			Name: "side table right", Shape: ShapeBox,
			Size:     Vec3{s * 1.5, s * 3, s * 1.5},
			Position: Vec3{w * 0.35, s * 1.5, -l * 0.4},
			Color:    "#4E342E",
		},
	}
}

func bathroomProps(w, l, h, s float64) []Prop {
	return []Prop{
		{
			Name: "toilet bowl", Shape: ShapeCylinder,
			Size:     Vec3{s * 1.2, s * 0.8, s * 3},
			Position: Vec3{w * 0.3, s * 1.5, -l * 0.3},
			Color:    "white",
		},
		{
			Name: "toilet cistern", Shape: ShapeBox,
			Size:     Vec3{s * 3, s * 2, s * 1},
			Position: Vec3{w * 0.3, s * 4, -l*0.3 - s*0.8},
			Color:    "white",
		},
		{
			Name: "basin", Shape: ShapeBox,
			Size:     Vec3{s * 3, s * 0.5, s * 2},
			Position: Vec3{-w * 0.3, s * 4, -l * 0.3},
			Color:    "white",
		},
		{
			Name: "basin pedestal", Shape: ShapeCylinder,
			Size:     Vec3{s * 0.5, s * 0.8, s * 4},
			Position: Vec3{-w * 0.3, s * 2, -l * 0.3},
			Color:    "white",
		},
		{
			Name: "mirror", Shape: ShapePlane,
			Size:     Vec3{s * 3, s * 4, 0},
			Position: Vec3{-w * 0.3, s * 8, -l*0.3 - s*1.1},
			Color:    "#aaddff", Metalness: 0.8, Roughness: 0.1,
		},
		{
			Name: "shower partition", Shape: ShapeBox,
			Size:     Vec3{w - 0.2, h, 0.05},
			Position: Vec3{0, h / 2, l * 0.3},
			Color:    "#aaddff", Opacity: 0.3,
		},
	}
}

func livingRoomProps(w, l, s float64) []Prop {
	return []Prop{
		{
			Name: "sofa base", Shape: ShapeBox,
			Size:     Vec3{w * 0.6, s * 3, s * 3},
			Position: Vec3{0, s * 1.5, -l * 0.3},
			Color:    "#555",
		},
		{
			Name: "sofa backrest", Shape: ShapeBox,
			Size:     Vec3{w * 0.6, s * 3, s * 0.5},
			Position: Vec3{0, s * 3, -l*0.3 - s*1.2},
			Color:    "#555",
		},
		{
			Name: "sofa armrest left", Shape: ShapeBox,
			Size:     Vec3{s * 0.5, s * 2, s * 3},
			Position: Vec3{-w * 0.25, s * 2.5, -l * 0.3},
			Color:    "#555",
		},
		{
			Name: "sofa armrest right", Shape: ShapeBox,
			Size:     Vec3{s * 0.5, s * 2, s * 3},
			Position: Vec3{w * 0.25, s * 2.5, -l * 0.3},
			Color:    "#555",
		},
		{
			Name: "coffee table top", Shape: ShapeBox,
			Size:     Vec3{w * 0.3, s * 0.2, s * 2.5},
			Position: Vec3{0, s * 1.2, 0},
			Color:    "#3E2723",
		},
		{
			Name: "coffee table base", Shape: ShapeBox,
			Size:     Vec3{s * 1, s * 1.2, s * 1},
			Position: Vec3{0, s * 0.6, 0},
			Color:    "#333",
		},
		{
			Name: "tv stand", Shape: ShapeBox,
			Size:     Vec3{w * 0.5, s * 2, s * 1.5},
			Position: Vec3{0, s * 2, l * 0.4},
			Color:    "#4E342E",
		},
		{
			Name: "tv screen", Shape: ShapeBox,
			Size:     Vec3{w * 0.4, s * 3.5, s * 0.2},
			Position: Vec3{0, s*4 + s*1, l * 0.4},
			Color:    "#111",
		},
	}
}

func balconyProps(w, l, s float64) []Prop {
	props := []Prop{
		{
			Name: "handrail", Shape: ShapeBox,
			Size:     Vec3{w, s * 0.5, s * 0.5},
			Position: Vec3{0, s * 3, l/2 - 0.1},
			Color:    "#333",
		},
	}

	for _, offset := range []float64{-0.4, -0.2, 0, 0.2, 0.4} {
		props = append(props, Prop{
			Name: "railing bar", Shape: ShapeCylinder,
			Size:     Vec3{s * 0.1, s * 0.1, s * 3},
			Position: Vec3{w * offset, s*3 - s*1.5, l/2 - 0.1},
			Color:    "#333",
		})
	}

	props = append(props,
		Prop{
			Name: "plant pot", Shape: ShapeCylinder,
			Size:     Vec3{s * 1, s * 0.8, s * 2},
			Position: Vec3{w * 0.3, s * 1, -l * 0.3},
			Color:    "#D84315",
		},
		Prop{
			Name: "plant", Shape: ShapeSphere,
			Size:     Vec3{s * 1, 0, 0},
			Position: Vec3{w * 0.3, s*1 + s*1.2, -l * 0.3},
			Color:    "green",
		},
	)
	return props
}

func parkingProps(w, l float64) []Prop {
	strip := func(name string, x float64, color string) Prop {
		return Prop{
			Name: name, Shape: ShapePlane,
			Size:     Vec3{0.1, l * 0.8, 0},
			Position: Vec3{x, 0.01, 0},
			Rotation: Vec3{-math.Pi / 2, 0, 0},
			Color:    color,
			Unlit:    true,
		}
	}
	return []Prop{
		strip("center line", 0, "yellow"),
		strip("bay line left", -w*0.25, "white"),
		strip("bay line right", w*0.25, "white"),
	}
}
