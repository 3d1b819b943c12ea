package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/retro-arcade/internal/intent"
)

// keyNames maps the keys the games bind to canonical intent key names.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyEscape:     "esc",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyR:          "r",
	ebiten.KeyS:          "s",
	ebiten.KeyW:          "w",
}

// KeyEvents converts the keys pressed and released this frame into raw
// events. Keys no game binds are skipped.
func KeyEvents(pressed, released []ebiten.Key) []intent.RawEvent {
	var out []intent.RawEvent
	for _, k := range pressed {
		if name, ok := keyNames[k]; ok {
			out = append(out, intent.RawEvent{Type: intent.KeyDown, Key: name})
		}
	}
	for _, k := range released {
		if name, ok := keyNames[k]; ok {
			out = append(out, intent.RawEvent{Type: intent.KeyUp, Key: name})
		}
	}
	return out
}

// menuIndex returns the zero-based game slot for the digit keys 1-9.
func menuIndex(k ebiten.Key) (int, bool) {
	if k >= ebiten.KeyDigit1 && k <= ebiten.KeyDigit9 {
		return int(k - ebiten.KeyDigit1), true
	}
	return 0, false
}
