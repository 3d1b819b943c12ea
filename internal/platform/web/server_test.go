package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/core"
	_ "github.com/vovakirdan/retro-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retro-arcade/internal/games/pong"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	_ "github.com/vovakirdan/retro-arcade/internal/games/tetris"
	"github.com/vovakirdan/retro-arcade/internal/intent"
	"github.com/vovakirdan/retro-arcade/internal/render"
	"github.com/vovakirdan/retro-arcade/internal/replay"
)

type memSaver struct {
	logs chan replay.Log
}

func (s memSaver) SaveReplay(l replay.Log) error {
	s.logs <- l
	return nil
}

func startServer(t *testing.T, saver memSaver) *httptest.Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Arcade.Snake.TickMS = 2
	cfg.Seed = 9

	ts := httptest.NewServer(NewServer(cfg, saver, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

// readUntil reads messages until one has the wanted type and decodes
// it into out when out is non-nil.
func readUntil(t *testing.T, ws *websocket.Conn, want string, out any) {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		_, data, err := ws.ReadMessage()
		require.NoError(t, err)

		var msg map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		var typ string
		require.NoError(t, json.Unmarshal(msg["type"], &typ))
		if typ != want {
			continue
		}
		if out != nil {
			require.NoError(t, json.Unmarshal(data, out))
		}
		return
	}
}

func TestServesCanvasPage(t *testing.T) {
	ts := startServer(t, memSaver{logs: make(chan replay.Log, 4)})

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<canvas")
}

func TestPlaySnakeOverSocket(t *testing.T) {
	saver := memSaver{logs: make(chan replay.Log, 4)}
	ts := startServer(t, saver)
	ws := dial(t, ts)

	var games GamesMessage
	readUntil(t, ws, "games", &games)
	assert.Len(t, games.Games, 4)

	require.NoError(t, ws.WriteJSON(ClientMessage{Type: MsgStart, Game: "snake"}))
	var frame FrameMessage
	readUntil(t, ws, "frame", &frame)
	assert.Equal(t, "snake", frame.Game)
	require.NotEmpty(t, frame.Rects)
	assert.Equal(t, "#333333", frame.Rects[0].Color, "background is drawn first")

	require.NoError(t, ws.WriteJSON(ClientMessage{
		Type:  MsgInput,
		Event: intent.RawEvent{Type: intent.KeyDown, Key: "ArrowUp"},
	}))

	var ev EventMessage
	for ev.Event != "game_over" {
		readUntil(t, ws, "event", &ev)
	}
	assert.Equal(t, string(core.CauseWall), ev.Cause)

	select {
	case journal := <-saver.logs:
		assert.Equal(t, "snake", journal.Game)
		_, err := replay.Verify(journal)
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("journal not saved")
	}
}

func TestUnknownRequestsReportErrors(t *testing.T) {
	ts := startServer(t, memSaver{logs: make(chan replay.Log, 4)})
	ws := dial(t, ts)
	readUntil(t, ws, "games", nil)

	var msg ErrorMessage
	require.NoError(t, ws.WriteJSON(ClientMessage{Type: MsgStart, Game: "chess"}))
	readUntil(t, ws, "error", &msg)
	assert.Contains(t, msg.Message, "unknown game")

	require.NoError(t, ws.WriteJSON(ClientMessage{Type: "dance"}))
	readUntil(t, ws, "error", &msg)
	assert.Contains(t, msg.Message, "unknown message type")
}

func TestEncodeFrameOrdersLayers(t *testing.T) {
	f := render.NewFrame(10, 10)
	f.Add(1, 1, 1, 1, core.ColorWhite, render.LayerProjectile)
	f.Add(0, 0, 10, 10, core.ColorGray, render.LayerBackground)

	msg := encodeFrame("pong", f, core.GameState{Score: 2}, true)
	require.Len(t, msg.Rects, 2)
	assert.Equal(t, "#333333", msg.Rects[0].Color)
	assert.Equal(t, "#eeeeee", msg.Rects[1].Color)
	assert.Equal(t, 2, msg.State.Score)
	assert.Equal(t, "running", msg.State.Status)
}
