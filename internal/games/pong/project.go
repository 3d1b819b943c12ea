package pong

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// Project maps a pong state to draw primitives.
func Project(s State) render.Frame {
	f := render.NewFrame(s.Width, s.Height)
	f.Add(0, 0, s.Width, s.Height, core.ColorGray, render.LayerBackground)

	for y := 0.0; y < s.Height; y += 20 {
		f.Add(s.Width/2-1, y, 2, 10, core.ColorBlue, render.LayerBoard)
	}

	pw, ph := s.PaddleWidth, s.PaddleHeight
	f.Add(0, s.PlayerY, pw, ph, core.ColorBrightCyan, render.LayerActor)
	f.Add(s.Width-pw, s.OpponentY, pw, ph, core.ColorBrightCyan, render.LayerActor)
	f.Add(s.BallX, s.BallY, s.BallSize, s.BallSize, core.ColorWhite, render.LayerProjectile)
	return f
}
