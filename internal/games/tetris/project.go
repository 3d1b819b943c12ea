package tetris

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// CellSize is the side of one board cell in world units.
const CellSize = 30

var kindColors = [Kinds]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

// Project maps a tetris state to draw primitives.
func Project(s State) render.Frame {
	w := float64(s.Columns * CellSize)
	h := float64(s.Rows * CellSize)
	f := render.NewFrame(w, h)
	f.Add(0, 0, w, h, core.ColorGray, render.LayerBackground)

	for y, row := range s.Board {
		for x, filled := range row {
			if filled {
				addCell(&f, x, y, core.ColorCyan, render.LayerBoard)
			}
		}
	}

	if s.Phase == PhaseFalling {
		c := kindColors[s.Piece.Kind]
		s.Piece.Cells(func(x, y int) {
			if y >= 0 {
				addCell(&f, x, y, c, render.LayerActor)
			}
		})
	}
	return f
}

func addCell(f *render.Frame, x, y int, c core.Color, layer render.Layer) {
	f.Add(float64(x*CellSize+1), float64(y*CellSize+1), CellSize-2, CellSize-2, c, layer)
}
