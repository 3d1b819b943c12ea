package snake

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// TileSize is the side of one grid tile in world units.
const TileSize = 20

// Project maps a snake state to draw primitives.
func Project(s State) render.Frame {
	size := float64(s.TileCount * TileSize)
	f := render.NewFrame(size, size)
	f.Add(0, 0, size, size, core.ColorGray, render.LayerBackground)

	for i, seg := range s.Segments {
		c := core.ColorCyan
		if i == 0 {
			c = core.ColorBrightCyan
		}
		addTile(&f, seg, c, render.LayerActor)
	}
	addTile(&f, s.Food, core.ColorMagenta, render.LayerBoard)
	return f
}

func addTile(f *render.Frame, p Point, c core.Color, layer render.Layer) {
	f.Add(float64(p.X*TileSize+1), float64(p.Y*TileSize+1), TileSize-2, TileSize-2, c, layer)
}
