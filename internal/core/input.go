package core

import "fmt"

// IntentKind is the category of a device-independent player action.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentRotate
	IntentShoot
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentNone:
		return "none"
	case IntentMove:
		return "move"
	case IntentRotate:
		return "rotate"
	case IntentShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Direction is the payload of a move intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid unit vector for the direction (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Intent is a discrete player action produced by the intent mapper.
//
// Edge-triggered games (Snake, Tetris) only look at press intents.
// Held-state games (Pong, Invaders) latch Active=true on press and clear it
// on the matching release.
type Intent struct {
	Kind     IntentKind `json:"kind"`
	Dir      Direction  `json:"dir,omitempty"`
	Rotation int        `json:"rotation,omitempty"` // +1 right control, -1 left control
	Active   bool       `json:"active"`
}

// Move returns a pressed move intent.
func Move(d Direction) Intent {
	return Intent{Kind: IntentMove, Dir: d, Active: true}
}

// Release returns a released move intent for held-state games.
func Release(d Direction) Intent {
	return Intent{Kind: IntentMove, Dir: d, Active: false}
}

// Rotate returns a rotate intent; dir > 0 names the right-hand control.
func Rotate(dir int) Intent {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return Intent{Kind: IntentRotate, Rotation: dir, Active: true}
}

// Shoot returns a shoot intent.
func Shoot() Intent {
	return Intent{Kind: IntentShoot, Active: true}
}

// IsNone reports whether the intent carries no action.
func (i Intent) IsNone() bool {
	return i.Kind == IntentNone
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentMove:
		if i.Active {
			return fmt.Sprintf("move(%s)", i.Dir)
		}
		return fmt.Sprintf("release(%s)", i.Dir)
	case IntentRotate:
		return fmt.Sprintf("rotate(%+d)", i.Rotation)
	default:
		return i.Kind.String()
	}
}
