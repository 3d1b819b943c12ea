// Package intent translates raw device events (keys, touch, clicks,
// swipes) into the discrete intents the simulations consume. Translation
// is stateless: the same event always yields the same intent.
package intent

import (
	"strings"
)

// EventType names a raw device event.
type EventType string

const (
	KeyDown    EventType = "key_down"
	KeyUp      EventType = "key_up"
	TouchStart EventType = "touch_start"
	TouchEnd   EventType = "touch_end"
	Click      EventType = "click"
	Swipe      EventType = "swipe"
)

// On-screen control names.
const (
	ControlUp          = "up"
	ControlDown        = "down"
	ControlLeft        = "left"
	ControlRight       = "right"
	ControlRotateLeft  = "rotate-left"
	ControlRotateRight = "rotate-right"
	ControlShoot       = "shoot"
)

// SwipeThreshold is the minimum travel along the dominant axis for a
// swipe to count.
const SwipeThreshold = 30

// RawEvent is a device event as reported by a host.
// Key is set for keyboard events, Control for touch and click events on
// on-screen buttons, DX/DY (end minus start) for swipes.
type RawEvent struct {
	Type    EventType `json:"type"`
	Key     string    `json:"key,omitempty"`
	Control string    `json:"control,omitempty"`
	DX      float64   `json:"dx,omitempty"`
	DY      float64   `json:"dy,omitempty"`
}

// String returns the canonical key name so a RawEvent can be matched
// with key.Matches.
func (e RawEvent) String() string {
	return NormalizeKey(e.Key)
}

var keyAliases = map[string]string{
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
	" ":          "space",
	"spacebar":   "space",
	"escape":     "esc",
	"return":     "enter",
}

// NormalizeKey maps browser (KeyboardEvent.key), terminal (Bubble Tea
// KeyMsg.String) and desktop key names to one canonical lower-case name.
func NormalizeKey(name string) string {
	if name == " " {
		return "space"
	}
	k := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}
