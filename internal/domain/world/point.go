package world

import "math"

// Cell is a grid coordinate. It is comparable and used directly as a map key.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point is a continuous position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// CellOf floors a pixel position onto the grid.
func CellOf(p Point, tileSize int) Cell {
	size := float64(tileSize)
	return Cell{X: int(math.Floor(p.X / size)), Y: int(math.Floor(p.Y / size))}
}

func Distance(a, b Cell) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

func ParseDirection(raw string) (Direction, bool) {
	switch d := Direction(raw); d {
	case DirUp, DirDown, DirLeft, DirRight:
		return d, true
	default:
		return "", false
	}
}

// Facing returns the direction from one cell toward another. The axis with the
// larger absolute delta wins; equal deltas resolve to the vertical axis.
func Facing(from, to Cell) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
