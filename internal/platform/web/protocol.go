package web

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/intent"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render"
)

// Client → Server messages

const (
	MsgStart   = "start"
	MsgRestart = "restart"
	MsgMenu    = "menu"
	MsgInput   = "input"
)

// ClientMessage is any message sent by the browser. Game is set for
// start, Event for input.
type ClientMessage struct {
	Type  string          `json:"type"`
	Game  string          `json:"game,omitempty"`
	Event intent.RawEvent `json:"event"`
}

// Server → Client messages

// GameEntry is one selectable game.
type GameEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// GamesMessage lists the games on connect.
type GamesMessage struct {
	Type  string      `json:"type"`
	Games []GameEntry `json:"games"`
}

// WireRect is a draw primitive with its colour resolved to CSS.
type WireRect struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Color string  `json:"color"`
}

// StateInfo is the lifecycle part of a frame message.
type StateInfo struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
	Cause  string `json:"cause,omitempty"`
	Active bool   `json:"active"`
}

// FrameMessage carries one projected frame.
type FrameMessage struct {
	Type   string     `json:"type"`
	Game   string     `json:"game"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Rects  []WireRect `json:"rects"`
	State  StateInfo  `json:"state"`
}

// EventMessage relays a lifecycle event.
type EventMessage struct {
	Type     string `json:"type"`
	Event    string `json:"event"`
	Score    int    `json:"score"`
	Opponent int    `json:"opponent,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

// ErrorMessage reports a rejected request.
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func gamesMessage() GamesMessage {
	msg := GamesMessage{Type: "games"}
	for _, g := range registry.List() {
		msg.Games = append(msg.Games, GameEntry{ID: g.ID, Title: g.Title})
	}
	return msg
}

// encodeFrame flattens a frame in draw order with CSS colours.
func encodeFrame(game string, f render.Frame, st core.GameState, active bool) FrameMessage {
	rects := make([]render.Rect, len(f.Rects))
	copy(rects, f.Rects)
	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].Layer < rects[j].Layer
	})

	wire := make([]WireRect, len(rects))
	for i, r := range rects {
		wire[i] = WireRect{X: r.X, Y: r.Y, W: r.W, H: r.H, Color: cssColor(r.Color)}
	}

	return FrameMessage{
		Type:   "frame",
		Game:   game,
		Width:  f.Width,
		Height: f.Height,
		Rects:  wire,
		State: StateInfo{
			Score:  st.Score,
			Status: st.Status.String(),
			Cause:  string(st.Cause),
			Active: active,
		},
	}
}

func cssColor(c core.Color) string {
	rgba := render.RGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
