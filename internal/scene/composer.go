// Package scene assembles renderable scene graphs for the room visualizer
// and owns the tile picker state machine. Compose is a pure function from
// an immutable snapshot to a command list; the external rendering engine
// sits behind the Engine interface and is not part of this package.
package scene

import (
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/geometry"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

const (
	floorFallbackColor = "#dbc3a2"
	wallFallbackColor  = "#f2efe8"
)

// Snapshot is everything Compose needs: dimensions, room type and the
// current tile selections. It is a value; composing never mutates it.
type Snapshot struct {
	Dims     geometry.Dimensions
	RoomType geometry.RoomType
	Scale    float64
	Floor    *models.Product
	Walls    map[geometry.WallFace]*models.Product
}

// Texture is a tile image with its per-axis repeat counts, computed from
// the panel's face size in feet.
type Texture struct {
	Image   string
	RepeatX int
	RepeatY int
}

// Node is one draw command. A nil Texture renders a plain colored surface.
type Node struct {
	Name      string
	Shape     geometry.Shape
	Size      geometry.Vec3
	Position  geometry.Vec3
	Rotation  geometry.Vec3
	Color     string
	Texture   *Texture
	Metalness float64
	Roughness float64
	Opacity   float64
	Unlit     bool
}

// Light mirrors the three-light rig the visualizer always uses.
type Light struct {
	Kind        string // ambient, hemisphere, directional
	Intensity   float64
	Position    geometry.Vec3
	SkyColor    string
	GroundColor string
}

// Grid is the helper grid under the floor.
type Grid struct {
	Extent    float64
	Divisions int
	Color1    string
	Color2    string
	Y         float64
}

// Graph is the full renderable command list for one snapshot.
type Graph struct {
	Camera geometry.Camera
	Lights []Light
	Nodes  []Node
	Grid   Grid
}

// Compose builds the scene graph: lights, floor, the four walls in stable
// order, the room-type furnishing props and the helper grid. Surfaces with
// no assigned tile image fall back to a flat neutral tone.
func Compose(s Snapshot) Graph {
	model := geometry.Build(s.Dims, s.Scale)
	w := model.Dims.Width * model.Scale
	l := model.Dims.Length * model.Scale
	h := model.Dims.Height * model.Scale

	g := Graph{
		Camera: model.Camera,
		Lights: []Light{
			{Kind: "ambient", Intensity: 0.5},
			{
				Kind: "hemisphere", Intensity: 0.9,
				Position: geometry.Vec3{0, h * 3, 0},
				SkyColor: "#ffffff", GroundColor: "#888888",
			},
			{
				Kind: "directional", Intensity: 0.6,
				Position: geometry.Vec3{-w * 1.3, h * 2, l * 1.3},
			},
		},
		Grid: Grid{
			Extent:    model.GridExtent,
			Divisions: 10,
			Color1:    "#dddddd",
			Color2:    "#eeeeee",
			Y:         0.001,
		},
	}

	g.Nodes = append(g.Nodes, floorNode(model, s.Floor))
	for _, face := range geometry.WallFaces() {
		g.Nodes = append(g.Nodes, wallNode(face, model.Walls[face], s.Walls[face]))
	}
	for _, prop := range geometry.Furnishings(s.RoomType, s.Dims, model.Scale) {
		g.Nodes = append(g.Nodes, Node{
			Name:      prop.Name,
			Shape:     prop.Shape,
			Size:      prop.Size,
			Position:  prop.Position,
			Rotation:  prop.Rotation,
			Color:     prop.Color,
			Metalness: prop.Metalness,
			Roughness: prop.Roughness,
			Opacity:   prop.Opacity,
			Unlit:     prop.Unlit,
		})
	}

	return g
}

func floorNode(model geometry.RoomModel, tile *models.Product) Node {
	node := Node{
		Name:      "floor",
		Shape:     geometry.ShapePlane,
		Size:      model.Floor.Size,
		Position:  model.Floor.Position,
		Rotation:  model.Floor.Rotation,
		Roughness: 0.95,
	}
	if tile != nil && tile.Image != "" {
		rx, ry := model.Floor.Repeats()
		node.Texture = &Texture{Image: tile.Image, RepeatX: rx, RepeatY: ry}
		return node
	}
	node.Color = floorFallbackColor
	return node
}

func wallNode(face geometry.WallFace, panel geometry.Panel, tile *models.Product) Node {
	node := Node{
		Name:      "wall " + string(face),
		Shape:     geometry.ShapeBox,
		Size:      panel.Size,
		Position:  panel.Position,
		Rotation:  panel.Rotation,
		Roughness: 1,
	}
	if tile != nil && tile.Image != "" {
		rx, ry := panel.Repeats()
		node.Texture = &Texture{Image: tile.Image, RepeatX: rx, RepeatY: ry}
		return node
	}
	node.Color = wallFallbackColor
	return node
}
