package web

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/intent"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// connection binds one socket to one session controller. The
// controller is only touched from the session.Run goroutine; the pumps
// exchange bytes and commands with it through channels.
type connection struct {
	ws      *websocket.Conn
	send    chan []byte
	logger  *log.Logger
	newCtrl func(session.Hooks) *session.Controller
}

func newConnection(ws *websocket.Conn, newCtrl func(session.Hooks) *session.Controller, logger *log.Logger) *connection {
	return &connection{
		ws:      ws,
		send:    make(chan []byte, sendBuffer),
		logger:  logger,
		newCtrl: newCtrl,
	}
}

// serve runs the connection until the client leaves or ctx ends.
func (c *connection) serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer c.ws.Close()

	ctrl := c.newCtrl(session.Hooks{
		OnScore: func(_ string, ev core.ScoreChanged) {
			c.sendMessage(EventMessage{Type: "event", Event: "score", Score: ev.Score, Opponent: ev.Opponent})
		},
		OnGameOver: func(_ string, ev core.GameOver, st core.GameState) {
			c.sendMessage(EventMessage{Type: "event", Event: "game_over", Score: st.Score, Cause: string(ev.Cause)})
		},
	})

	commands := make(chan session.Command, sendBuffer)
	go c.writePump(ctx)
	go c.readPump(ctx, cancel, commands)

	c.sendMessage(gamesMessage())
	if err := session.Run(ctx, ctrl, commands, c.draw); err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Warn("session ended with error", "error", err)
	}
}

func (c *connection) draw(ctrl *session.Controller) {
	id := ""
	if g := ctrl.Game(); g != nil {
		id = g.ID()
	}
	c.sendMessage(encodeFrame(id, ctrl.Frame(), ctrl.State(), ctrl.Active()))
}

// sendMessage queues a message; frames are dropped when the client
// falls behind.
func (c *connection) sendMessage(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("cannot marshal message", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Debug("send buffer full, message dropped")
	}
}

func (c *connection) readPump(ctx context.Context, cancel context.CancelFunc, commands chan<- session.Command) {
	defer cancel()

	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendMessage(ErrorMessage{Type: "error", Message: "malformed message"})
			continue
		}

		cmd, ok := c.command(msg)
		if !ok {
			c.sendMessage(ErrorMessage{Type: "error", Message: "unknown message type " + msg.Type})
			continue
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// command turns a client message into a controller mutation. Request
// errors are reported to the client and never end the session.
func (c *connection) command(msg ClientMessage) (session.Command, bool) {
	switch msg.Type {
	case MsgStart:
		return func(ctrl *session.Controller) error {
			if _, err := ctrl.Start(msg.Game); err != nil {
				c.sendMessage(ErrorMessage{Type: "error", Message: err.Error()})
			}
			return nil
		}, true

	case MsgRestart:
		return func(ctrl *session.Controller) error {
			if _, err := ctrl.Restart(); err != nil {
				c.sendMessage(ErrorMessage{Type: "error", Message: "no game to restart"})
			}
			return nil
		}, true

	case MsgMenu:
		return func(ctrl *session.Controller) error {
			ctrl.ReturnToMenu()
			return nil
		}, true

	case MsgInput:
		ev := msg.Event
		return func(ctrl *session.Controller) error {
			if g := ctrl.Game(); g != nil {
				if in, ok := intent.Map(g.ID(), ev); ok {
					ctrl.Input(in)
				}
			}
			return nil
		}, true
	}
	return nil, false
}

func (c *connection) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case message := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
