// Package render holds the draw primitives produced by the per-game
// projectors and the adapters that put them on a terminal screen.
// Projectors are pure: they read a state snapshot and never mutate it.
package render

import (
	"image/color"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Layer orders primitives; hosts draw lower layers first.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBoard
	LayerActor
	LayerProjectile
)

// Rect is a filled rectangle in world units.
type Rect struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	W     float64    `json:"w"`
	H     float64    `json:"h"`
	Color core.Color `json:"color"`
	Layer Layer      `json:"layer"`
}

// Frame is a complete draw list for one game in world units.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Rects  []Rect  `json:"rects"`
}

// NewFrame creates an empty frame for a playfield of the given size.
func NewFrame(w, h float64) Frame {
	return Frame{Width: w, Height: h}
}

// Add appends a rectangle to the frame.
func (f *Frame) Add(x, y, w, h float64, c core.Color, layer Layer) {
	f.Rects = append(f.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c, Layer: layer})
}

// AddBox appends a rectangle covering the given box.
func (f *Frame) AddBox(b core.Box, c core.Color, layer Layer) {
	f.Add(b.X, b.Y, b.W, b.H, c, layer)
}

// Count returns the number of primitives on the given layer.
func (f Frame) Count(layer Layer) int {
	n := 0
	for _, r := range f.Rects {
		if r.Layer == layer {
			n++
		}
	}
	return n
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorRed:          {0xcc, 0x22, 0x22, 0xff},
	core.ColorGreen:        {0x22, 0xaa, 0x22, 0xff},
	core.ColorYellow:       {0xcc, 0xcc, 0x22, 0xff},
	core.ColorBlue:         {0x22, 0x44, 0xcc, 0xff},
	core.ColorMagenta:      {0xcc, 0x22, 0xcc, 0xff},
	core.ColorCyan:         {0x22, 0xcc, 0xcc, 0xff},
	core.ColorWhite:        {0xee, 0xee, 0xee, 0xff},
	core.ColorBrightRed:    {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:  {0x00, 0xff, 0x41, 0xff},
	core.ColorBrightYellow: {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightCyan:   {0x00, 0xff, 0xff, 0xff},
	core.ColorOrange:       {0xff, 0x88, 0x00, 0xff},
	core.ColorGray:         {0x33, 0x33, 0x33, 0xff},
}

// RGBA returns the palette colour for pixel-based hosts.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
