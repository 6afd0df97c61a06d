package scene

import (
	"errors"
	"fmt"

	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/geometry"
	"github.com/Amirrtadhanasekar/jaithindal-tiles/internal/models"
)

var (
	ErrNotPicking    = errors.New("no tile collection is open")
	ErrNoPendingTile = errors.New("no wall tile awaiting a scope choice")
	ErrInvalidScope  = errors.New("invalid wall scope")
)

// State tracks where the picker is in its apply flow.
type State int

const (
	// StateIdle: no collection open, nothing pending.
	StateIdle State = iota
	// StatePicking: a collection filter (floor or wall) is active.
	StatePicking
	// StatePendingWall: a wall tile was picked and awaits a scope choice.
	StatePendingWall
)

// WallScope is the target of a pending wall apply.
type WallScope string

const (
	ScopeAll   WallScope = "all"
	ScopeFront WallScope = WallScope(geometry.WallFront)
	ScopeBack  WallScope = WallScope(geometry.WallBack)
	ScopeLeft  WallScope = WallScope(geometry.WallLeft)
	ScopeRight WallScope = WallScope(geometry.WallRight)
)

// Picker is the tile apply state machine:
//
//	idle -> picking -> (floor: direct apply -> idle)
//	                -> (wall: pending scope -> apply or cancel -> idle)
//
// It owns the session selection state: one floor slot and exactly four
// wall slots, each empty or holding one catalog tile. Mutation happens
// only through Pick, ApplyWall and Reset.
type Picker struct {
	state   State
	kind    models.TileType
	pending *models.Product

	floor *models.Product
	walls map[geometry.WallFace]*models.Product
}

func NewPicker() *Picker {
	return &Picker{walls: emptyWalls()}
}

func emptyWalls() map[geometry.WallFace]*models.Product {
	walls := make(map[geometry.WallFace]*models.Product, 4)
	for _, face := range geometry.WallFaces() {
		walls[face] = nil
	}
	return walls
}

func (p *Picker) State() State { return p.state }

// Open activates a collection filter. Opening while a wall choice is
// pending discards that pending tile first.
func (p *Picker) Open(kind models.TileType) error {
	if !kind.Valid() {
		return fmt.Errorf("unknown tile collection %q", kind)
	}
	p.pending = nil
	p.kind = kind
	p.state = StatePicking
	return nil
}

// Pick selects a tile from the open collection. Floor tiles apply
// immediately; wall tiles park in the pending slot until ApplyWall or
// Cancel resolves the scope.
func (p *Picker) Pick(tile models.Product) error {
	if p.state != StatePicking {
		return ErrNotPicking
	}
	if p.kind == models.TileFloor {
		t := tile
		p.floor = &t
		p.state = StateIdle
		return nil
	}
	t := tile
	p.pending = &t
	p.state = StatePendingWall
	return nil
}

// ApplyWall resolves a pending wall tile. ScopeAll overwrites all four
// slots unconditionally, discarding prior per-wall assignments.
func (p *Picker) ApplyWall(scope WallScope) error {
	if p.state != StatePendingWall || p.pending == nil {
		return ErrNoPendingTile
	}

	switch scope {
	case ScopeAll:
		for _, face := range geometry.WallFaces() {
			p.walls[face] = p.pending
		}
	case ScopeFront, ScopeBack, ScopeLeft, ScopeRight:
		p.walls[geometry.WallFace(scope)] = p.pending
	default:
		return ErrInvalidScope
	}

	p.pending = nil
	p.state = StateIdle
	return nil
}

// Cancel discards a pending wall tile without touching wall state. It is
// harmless in any state.
func (p *Picker) Cancel() {
	p.pending = nil
	p.state = StateIdle
}

// Reset clears every selection, the "reset design" action.
func (p *Picker) Reset() {
	p.pending = nil
	p.floor = nil
	p.walls = emptyWalls()
	p.state = StateIdle
}

// Floor returns the applied floor tile, nil when unset.
func (p *Picker) Floor() *models.Product { return p.floor }

// Wall returns the tile applied to one face, nil when unset.
func (p *Picker) Wall(face geometry.WallFace) *models.Product {
	return p.walls[face]
}

// Snapshot captures the current selections with the given room setup for
// composing. The wall map is copied so later picks don't mutate a graph
// already composed.
func (p *Picker) Snapshot(dims geometry.Dimensions, roomType geometry.RoomType, scale float64) Snapshot {
	walls := make(map[geometry.WallFace]*models.Product, 4)
	for face, tile := range p.walls {
		walls[face] = tile
	}
	return Snapshot{
		Dims:     dims,
		RoomType: roomType,
		Scale:    scale,
		Floor:    p.floor,
		Walls:    walls,
	}
}
