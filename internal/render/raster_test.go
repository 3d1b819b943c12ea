package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func TestRasterizeScalesToCells(t *testing.T) {
	f := NewFrame(100, 50)
	f.Add(0, 0, 10, 10, core.ColorGreen, LayerActor)
	f.Add(90, 40, 10, 10, core.ColorRed, LayerActor)

	s := core.NewScreen(10, 6)
	Rasterize(f, s, 1)

	assert.Equal(t, core.Cell{Rune: Block, Color: core.ColorGreen}, s.GetCell(0, 1))
	assert.Equal(t, core.Cell{Rune: Block, Color: core.ColorRed}, s.GetCell(9, 5))
	assert.Equal(t, ' ', s.Get(0, 0), "row above top is reserved for the HUD")
	assert.Equal(t, ' ', s.Get(5, 3))
}

func TestRasterizeTinyPrimitiveStillVisible(t *testing.T) {
	f := NewFrame(800, 600)
	f.Add(401, 301, 4, 10, core.ColorYellow, LayerProjectile)

	s := core.NewScreen(80, 30)
	Rasterize(f, s, 0)

	assert.Equal(t, Block, s.Get(40, 15))
}

func TestRasterizeLayerOrder(t *testing.T) {
	f := NewFrame(10, 10)
	f.Add(0, 0, 10, 10, core.ColorRed, LayerActor)
	f.Add(0, 0, 10, 10, core.ColorGray, LayerBackground)

	s := core.NewScreen(1, 1)
	Rasterize(f, s, 0)

	assert.Equal(t, core.ColorRed, s.GetCell(0, 0).Color, "actors draw over the background")
}

func TestRasterizeIgnoresDegenerateInput(t *testing.T) {
	s := core.NewScreen(4, 4)
	Rasterize(Frame{}, s, 0)
	Rasterize(NewFrame(10, 10), s, 10)
	assert.Equal(t, "    \n    \n    \n    ", s.String())
}

func TestRGBAFallsBackToDefault(t *testing.T) {
	assert.Equal(t, RGBA(core.ColorDefault), RGBA(core.Color(200)))
	assert.NotEqual(t, RGBA(core.ColorRed), RGBA(core.ColorGreen))
}

func TestFrameCount(t *testing.T) {
	f := NewFrame(1, 1)
	f.AddBox(core.NewBox(0, 0, 1, 1), core.ColorRed, LayerActor)
	f.AddBox(core.NewBox(0, 0, 1, 1), core.ColorRed, LayerActor)
	f.Add(0, 0, 1, 1, core.ColorRed, LayerProjectile)

	assert.Equal(t, 2, f.Count(LayerActor))
	assert.Equal(t, 1, f.Count(LayerProjectile))
	assert.Equal(t, 0, f.Count(LayerBoard))
}
