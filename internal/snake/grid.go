// Package snake implements the game rules: the grid and its teleporting
// boundary, the entity sets, the snake itself, and the per-tick engine.
// It has no terminal dependencies; the platform feeds it events and draws
// its snapshots.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snake-plus/internal/core"
)

// Cell is a grid coordinate. Cells compare by value.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away along h.
func (c Cell) Add(h Heading) Cell {
	return Cell{X: c.X + h.DX, Y: c.Y + h.DY}
}

// Sub returns the offset from o to c.
func (c Cell) Sub(o Cell) Heading {
	return Heading{DX: c.X - o.X, DY: c.Y - o.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Heading is a movement vector. Valid headings are the four unit vectors.
type Heading struct {
	DX, DY int
}

// The four headings.
var (
	Up    = Heading{DX: 0, DY: -1}
	Down  = Heading{DX: 0, DY: 1}
	Left  = Heading{DX: -1, DY: 0}
	Right = Heading{DX: 1, DY: 0}
)

// Headings lists the valid headings in a fixed order used for random picks.
var Headings = [4]Heading{Up, Down, Left, Right}

// Opposite returns the reversed heading.
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// IsOpposite reports whether h points exactly against o.
func (h Heading) IsOpposite(o Heading) bool {
	return h == o.Opposite()
}

// IsUnit reports whether h is one of the four valid headings.
func (h Heading) IsUnit() bool {
	return core.Abs(h.DX)+core.Abs(h.DY) == 1
}

// unit reduces an arbitrary offset to its dominant axis, x winning ties.
// The zero vector maps to the zero heading.
func (h Heading) unit() Heading {
	if core.Abs(h.DX) >= core.Abs(h.DY) {
		return Heading{DX: core.Sign(h.DX), DY: 0}
	}
	return Heading{DX: 0, DY: core.Sign(h.DY)}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", h.DX, h.DY)
	}
}

// HeadingFor maps a directional action to its heading.
func HeadingFor(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return Heading{}, false
}

// Side names one boundary edge of the grid.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is the fixed W x H coordinate space. There are no walls; leaving the
// grid relocates the head to a random boundary cell.
type Grid struct {
	W, H int
}

// NewGrid creates a grid of the given size.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// OnEdge reports whether c is an in-bounds cell of the outermost ring.
func (g Grid) OnEdge(c Cell) bool {
	return g.InBounds(c) && (c.X == 0 || c.Y == 0 || c.X == g.W-1 || c.Y == g.H-1)
}

// Size returns the number of cells on the grid.
func (g Grid) Size() int {
	return g.W * g.H
}

// RandomCell returns a uniformly random cell.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.W), Y: rng.Intn(g.H)}
}

// EdgeCell returns a uniformly random cell along the given side.
func (g Grid) EdgeCell(side Side, rng *rand.Rand) Cell {
	switch side {
	case SideTop:
		return Cell{X: rng.Intn(g.W), Y: 0}
	case SideBottom:
		return Cell{X: rng.Intn(g.W), Y: g.H - 1}
	case SideLeft:
		return Cell{X: 0, Y: rng.Intn(g.H)}
	default:
		return Cell{X: g.W - 1, Y: rng.Intn(g.H)}
	}
}

// RandomEdgeCell picks a side uniformly, then a cell along it. This is the
// re-entry point for a head that would leave the grid.
func (g Grid) RandomEdgeCell(rng *rand.Rand) Cell {
	return g.EdgeCell(Side(rng.Intn(4)), rng)
}
