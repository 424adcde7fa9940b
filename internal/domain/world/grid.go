package world

import (
	"errors"
	"fmt"
)

const DefaultTileSize = 32

var ErrInvalidLayout = errors.New("invalid tile layout")

// Grid is the static tile map of the island.
type Grid struct {
	width    int
	height   int
	tileSize int
	tiles    []TileKind
}

func NewGrid(rows [][]TileKind, tileSize int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidLayout
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	width := len(rows[0])
	tiles := make([]TileKind, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLayout, y, len(row), width)
		}
		tiles = append(tiles, row...)
	}
	return &Grid{width: width, height: len(rows), tileSize: tileSize, tiles: tiles}, nil
}

func (g *Grid) Width() int    { return g.width }
func (g *Grid) Height() int   { return g.height }
func (g *Grid) TileSize() int { return g.tileSize }

// PixelWidth and PixelHeight bound player movement.
func (g *Grid) PixelWidth() float64  { return float64(g.width * g.tileSize) }
func (g *Grid) PixelHeight() float64 { return float64(g.height * g.tileSize) }

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Kind reports the tile at c; cells outside the map are sky.
func (g *Grid) Kind(c Cell) TileKind {
	if !g.InBounds(c) {
		return TileSky
	}
	return g.tiles[c.Y*g.width+c.X]
}

func (g *Grid) IsWalkable(c Cell) bool {
	return g.InBounds(c) && g.Kind(c).Walkable()
}

func (g *Grid) IsWalkableAt(p Point) bool {
	return g.IsWalkable(g.CellAt(p))
}

func (g *Grid) CellAt(p Point) Cell {
	return CellOf(p, g.tileSize)
}

// CellForPixel resolves a click position to a cell inside the play area.
func (g *Grid) CellForPixel(p Point) (Cell, bool) {
	c := g.CellAt(p)
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return c, true
}

// InRange reports whether target lies within maxRange grid units of the cell
// under the player's pixel position.
func (g *Grid) InRange(target Cell, player Point, maxRange float64) bool {
	return Distance(g.CellAt(player), target) <= maxRange
}

func (g *Grid) Tiles() []Tile {
	out := make([]Tile, 0, len(g.tiles))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, Tile{X: x, Y: y, Kind: g.tiles[y*g.width+x]})
		}
	}
	return out
}
