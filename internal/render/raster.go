package render

import (
	"math"
	"sort"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Block is the rune used for filled cells.
const Block = '█'

// Rasterize scales a frame onto the screen below row top.
// Every primitive covers at least one cell so small projectiles stay visible.
func Rasterize(f Frame, dst *core.Screen, top int) {
	cols := dst.Width()
	rows := dst.Height() - top
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}

	sx := f.Width / float64(cols)
	sy := f.Height / float64(rows)

	rects := make([]Rect, len(f.Rects))
	copy(rects, f.Rects)
	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].Layer < rects[j].Layer
	})

	for _, r := range rects {
		x0, x1 := span(r.X, r.W, sx, cols)
		y0, y1 := span(r.Y, r.H, sy, rows)
		cell := core.Cell{Rune: Block, Color: r.Color}
		if r.Layer == LayerBackground {
			cell.Rune = '·'
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetCell(x, y+top, cell)
			}
		}
	}
}

// span maps [pos, pos+size) in world units to a half-open cell range.
func span(pos, size, scale float64, limit int) (int, int) {
	start := int(math.Floor(pos / scale))
	end := int(math.Ceil((pos + size) / scale))
	if end <= start {
		end = start + 1
	}
	return core.Clamp(start, 0, limit), core.Clamp(end, 0, limit)
}
