package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// Project maps an invaders state to draw primitives.
func Project(s State) render.Frame {
	f := render.NewFrame(s.Width, s.Height)

	f.AddBox(s.Player, core.ColorBrightCyan, render.LayerActor)
	for _, e := range s.Enemies {
		f.AddBox(e, core.ColorMagenta, render.LayerActor)
	}
	for _, b := range s.PlayerBullets {
		f.AddBox(b.Box, core.ColorBrightYellow, render.LayerProjectile)
	}
	for _, b := range s.EnemyBullets {
		f.AddBox(b.Box, core.ColorBrightRed, render.LayerProjectile)
	}
	return f
}
