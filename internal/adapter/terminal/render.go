package terminal

import (
	"fmt"
	"io"
	"strings"

	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"
)

var tileGlyphs = map[world.TileKind]byte{
	world.TileSky:   ' ',
	world.TileGrass: '.',
	world.TileWater: '~',
}

var stageGlyphs = map[farm.Stage]byte{
	farm.StageTilled:  '=',
	farm.StageSeeded:  ',',
	farm.StageGrowing: 'v',
	farm.StageReady:   'Y',
}

// RenderMap draws the island with plots and the farmer (@) on top. Column
// and row indices run along the top and left edges.
func RenderMap(w io.Writer, grid *world.Grid, snap farm.Snapshot) error {
	plots := make(map[world.Cell]farm.Stage, len(snap.Plots))
	for _, p := range snap.Plots {
		plots[p.Cell] = p.Stage
	}

	var b strings.Builder
	b.WriteString("   ")
	for x := 0; x < grid.Width(); x++ {
		b.WriteByte(byte('0' + x%10))
	}
	b.WriteByte('\n')
	for y := 0; y < grid.Height(); y++ {
		fmt.Fprintf(&b, "%2d ", y)
		for x := 0; x < grid.Width(); x++ {
			c := world.Cell{X: x, Y: y}
			switch stage, ok := plots[c]; {
			case c == snap.Player.Cell:
				b.WriteByte('@')
			case ok:
				b.WriteByte(stageGlyphs[stage])
			default:
				b.WriteByte(tileGlyphs[grid.Kind(c)])
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func RenderInventory(w io.Writer, snap farm.Snapshot) error {
	_, err := fmt.Fprintf(w, "seeds: %d  crops: %d\n", snap.Inventory[farm.ItemSeeds], snap.Inventory[farm.ItemCrops])
	return err
}

func RenderPlots(w io.Writer, snap farm.Snapshot) error {
	for _, p := range snap.Plots {
		if _, err := fmt.Fprintf(w, "(%d,%d) %-7s water %d  %dms\n", p.Cell.X, p.Cell.Y, p.Stage, p.Water, p.TimeInStage.Milliseconds()); err != nil {
			return err
		}
	}
	return nil
}
