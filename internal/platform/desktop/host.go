// Package desktop hosts the arcade in a native window using ebiten. The
// session controller is driven from ebiten's fixed-rate Update loop and
// each game's frame is scaled to fit the window.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/intent"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// hudHeight is reserved above the playfield for the status line.
	hudHeight = 24
)

// Options configure a Host.
type Options struct {
	Config config.Arcade
	// Saver receives finished journals; may be nil.
	Saver  session.Saver
	Logger *log.Logger
	// Seed fixes every round's seed when non-zero.
	Seed int64
	// StartGame opens a game directly instead of the menu.
	StartGame string
}

// Host implements ebiten.Game.
type Host struct {
	ctrl   *session.Controller
	games  []registry.GameInfo
	cursor int
	table  intent.Table
	logger *log.Logger
	// acc accumulates simulated time until the next tick is due.
	acc  time.Duration
	quit bool
}

// NewHost creates a host showing the game menu, or StartGame if set.
func NewHost(opts Options) (*Host, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionOpts := []session.Option{session.WithLogger(logger)}
	if opts.Saver != nil {
		sessionOpts = append(sessionOpts, session.WithSaver(opts.Saver))
	}
	if opts.Seed != 0 {
		seed := opts.Seed
		sessionOpts = append(sessionOpts, session.WithSeed(func() int64 { return seed }))
	}

	h := &Host{
		ctrl:   session.New(opts.Config, sessionOpts...),
		games:  registry.List(),
		logger: logger,
	}
	if opts.StartGame != "" {
		if err := h.start(opts.StartGame); err != nil {
			return nil, fmt.Errorf("desktop: %w", err)
		}
	}
	return h, nil
}

func (h *Host) start(id string) error {
	if _, err := h.ctrl.Start(id); err != nil {
		return err
	}
	h.table, _ = intent.For(id)
	h.acc = 0
	return nil
}

// Update advances one ebiten tick.
func (h *Host) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	return h.update(dt, inpututil.AppendJustPressedKeys(nil), inpututil.AppendJustReleasedKeys(nil))
}

// update handles one frame's worth of input and time.
func (h *Host) update(dt time.Duration, pressed, released []ebiten.Key) error {
	if h.ctrl.Game() == nil {
		h.updateMenu(pressed)
	} else {
		h.updateGame(dt, pressed, released)
	}
	if h.quit {
		h.ctrl.Stop()
		return ebiten.Termination
	}
	return nil
}

func (h *Host) updateMenu(pressed []ebiten.Key) {
	for _, k := range pressed {
		if i, ok := menuIndex(k); ok && i < len(h.games) {
			h.cursor = i
			h.startFromMenu(h.games[i].ID)
			return
		}
		switch k {
		case ebiten.KeyArrowUp:
			if h.cursor > 0 {
				h.cursor--
			}
		case ebiten.KeyArrowDown:
			if h.cursor < len(h.games)-1 {
				h.cursor++
			}
		case ebiten.KeyEnter:
			if len(h.games) > 0 {
				h.startFromMenu(h.games[h.cursor].ID)
				return
			}
		case ebiten.KeyEscape, ebiten.KeyQ:
			h.quit = true
			return
		}
	}
}

// startFromMenu starts id and logs a failure; the menu stays up.
func (h *Host) startFromMenu(id string) {
	if err := h.start(id); err != nil {
		h.logger.Error("cannot start game", "game", id, "error", err)
	}
}

func (h *Host) updateGame(dt time.Duration, pressed, released []ebiten.Key) {
	for _, k := range pressed {
		switch {
		case k == ebiten.KeyEscape:
			h.ctrl.ReturnToMenu()
			return
		case k == ebiten.KeyR && !h.ctrl.Active():
			if _, err := h.ctrl.Restart(); err == nil {
				h.acc = 0
			}
			return
		}
	}

	for _, ev := range KeyEvents(pressed, released) {
		if in, ok := h.table.Map(ev); ok {
			h.ctrl.Input(in)
		}
	}

	t, ok := h.ctrl.Ticket()
	if !ok {
		return
	}
	h.acc += dt
	for h.acc >= t.Interval && h.ctrl.Active() {
		h.acc -= t.Interval
		h.ctrl.Tick(t.Generation)
	}
}

// Draw renders the menu or the current frame.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x11, 0x11, 0x11, 0xff})

	if h.ctrl.Game() == nil {
		ebitenutil.DebugPrintAt(screen, h.menuText(), 40, 40)
		return
	}

	f := h.ctrl.Frame()
	scale, ox, oy := fit(f, ScreenWidth, ScreenHeight-hudHeight)
	for _, r := range f.Rects {
		vector.DrawFilledRect(screen,
			ox+float32(r.X)*scale, hudHeight+oy+float32(r.Y)*scale,
			float32(r.W)*scale, float32(r.H)*scale,
			render.RGBA(r.Color), false)
	}
	ebitenutil.DebugPrintAt(screen, h.hud(), 8, 4)
}

// Layout uses a fixed logical resolution.
func (h *Host) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (h *Host) menuText() string {
	var b strings.Builder
	b.WriteString("R E T R O   A R C A D E\n\n")
	for i, g := range h.games {
		cursor := "  "
		if i == h.cursor {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%d  %s\n", cursor, i+1, g.Title)
	}
	b.WriteString("\n1-9 or Enter: play   Esc: quit")
	return b.String()
}

func (h *Host) hud() string {
	st := h.ctrl.State()
	line := fmt.Sprintf("%s   Score: %d", strings.ToUpper(h.ctrl.Game().Title()), st.Score)
	if st.Over() {
		line += fmt.Sprintf("   %s (%s)   R: restart   Esc: menu", strings.ToUpper(st.Status.String()), st.Cause)
	} else {
		line += "   Esc: menu"
	}
	return line
}

// fit scales a frame to the largest size that fits w x h, centered.
func fit(f render.Frame, w, h float64) (scale, ox, oy float32) {
	if f.Width <= 0 || f.Height <= 0 {
		return 1, 0, 0
	}
	s := min(w/f.Width, h/f.Height)
	return float32(s), float32((w - f.Width*s) / 2), float32((h - f.Height*s) / 2)
}

// Controller exposes the session controller, mainly for tests.
func (h *Host) Controller() *session.Controller {
	return h.ctrl
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	h, err := NewHost(opts)
	if err != nil {
		return err
	}
	defer h.ctrl.Stop()

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Retro Arcade")
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
