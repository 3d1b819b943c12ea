package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ArrowUp", "up"},
		{"ArrowLeft", "left"},
		{" ", "space"},
		{"Spacebar", "space"},
		{"Escape", "esc"},
		{"esc", "esc"},
		{"W", "w"},
		{"up", "up"},
		{"ctrl+c", "ctrl+c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.in), tt.in)
	}
}

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name string
		game string
		ev   RawEvent
		want core.Intent
		ok   bool
	}{
		{"snake arrow", "snake", RawEvent{Type: KeyDown, Key: "ArrowUp"}, core.Move(core.DirUp), true},
		{"snake terminal arrow", "snake", RawEvent{Type: KeyDown, Key: "left"}, core.Move(core.DirLeft), true},
		{"snake ignores key up", "snake", RawEvent{Type: KeyUp, Key: "ArrowUp"}, core.Intent{}, false},
		{"snake ignores w", "snake", RawEvent{Type: KeyDown, Key: "w"}, core.Intent{}, false},
		{"pong press", "pong", RawEvent{Type: KeyDown, Key: "W"}, core.Move(core.DirUp), true},
		{"pong release", "pong", RawEvent{Type: KeyUp, Key: "s"}, core.Release(core.DirDown), true},
		{"pong ignores arrows", "pong", RawEvent{Type: KeyDown, Key: "ArrowUp"}, core.Intent{}, false},
		{"tetris rotate left", "tetris", RawEvent{Type: KeyDown, Key: "a"}, core.Rotate(-1), true},
		{"tetris rotate right", "tetris", RawEvent{Type: KeyDown, Key: "D"}, core.Rotate(1), true},
		{"tetris soft drop", "tetris", RawEvent{Type: KeyDown, Key: "ArrowDown"}, core.Move(core.DirDown), true},
		{"tetris no up", "tetris", RawEvent{Type: KeyDown, Key: "ArrowUp"}, core.Intent{}, false},
		{"invaders browser space", "invaders", RawEvent{Type: KeyDown, Key: " "}, core.Shoot(), true},
		{"invaders held right", "invaders", RawEvent{Type: KeyDown, Key: "ArrowRight"}, core.Move(core.DirRight), true},
		{"invaders release left", "invaders", RawEvent{Type: KeyUp, Key: "ArrowLeft"}, core.Release(core.DirLeft), true},
		{"invaders shoot has no release", "invaders", RawEvent{Type: KeyUp, Key: " "}, core.Intent{}, false},
		{"unknown game", "chess", RawEvent{Type: KeyDown, Key: "up"}, core.Intent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Map(tt.game, tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapControls(t *testing.T) {
	tests := []struct {
		name string
		game string
		ev   RawEvent
		want core.Intent
		ok   bool
	}{
		{"snake touch", "snake", RawEvent{Type: TouchStart, Control: ControlDown}, core.Move(core.DirDown), true},
		{"snake click", "snake", RawEvent{Type: Click, Control: ControlRight}, core.Move(core.DirRight), true},
		{"pong touch hold", "pong", RawEvent{Type: TouchStart, Control: ControlUp}, core.Move(core.DirUp), true},
		{"pong touch release", "pong", RawEvent{Type: TouchEnd, Control: ControlUp}, core.Release(core.DirUp), true},
		{"pong click ignored", "pong", RawEvent{Type: Click, Control: ControlUp}, core.Intent{}, false},
		{"tetris rotate control", "tetris", RawEvent{Type: Click, Control: ControlRotateLeft}, core.Rotate(-1), true},
		{"invaders shoot control", "invaders", RawEvent{Type: TouchStart, Control: ControlShoot}, core.Shoot(), true},
		{"invaders shoot touch end", "invaders", RawEvent{Type: TouchEnd, Control: ControlShoot}, core.Intent{}, false},
		{"unknown control", "snake", RawEvent{Type: TouchStart, Control: ControlShoot}, core.Intent{}, false},
		{"empty control", "snake", RawEvent{Type: Click}, core.Intent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Map(tt.game, tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapSwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   core.Intent
		ok     bool
	}{
		{"left", -40, 10, core.Move(core.DirLeft), true},
		{"right", 31, -30, core.Move(core.DirRight), true},
		{"up", 5, -50, core.Move(core.DirUp), true},
		{"down", -20, 45, core.Move(core.DirDown), true},
		{"too short", 30, 0, core.Intent{}, false},
		{"tie goes vertical", 40, 40, core.Move(core.DirDown), true},
		{"short vertical", 0, -10, core.Intent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Map("snake", RawEvent{Type: Swipe, DX: tt.dx, DY: tt.dy})
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := Map("tetris", RawEvent{Type: Swipe, DX: -100})
	assert.False(t, ok, "only snake reads swipes")
}

func TestReleasesAndHeld(t *testing.T) {
	assert.Equal(t, []core.Intent{core.Release(core.DirUp), core.Release(core.DirDown)}, Releases("pong"))
	assert.Empty(t, Releases("snake"))

	inv, ok := For("invaders")
	assert.True(t, ok)
	assert.True(t, inv.Held(core.Move(core.DirLeft)))
	assert.False(t, inv.Held(core.Shoot()))
}

func TestHelpListsEveryBinding(t *testing.T) {
	for _, id := range []string{"snake", "pong", "tetris", "invaders"} {
		tbl, ok := For(id)
		assert.True(t, ok, id)
		assert.Len(t, tbl.ShortHelp(), len(tbl.Bindings), id)
		for _, b := range tbl.ShortHelp() {
			assert.NotEmpty(t, b.Help().Desc, id)
		}
	}
}
