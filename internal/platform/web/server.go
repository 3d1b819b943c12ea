// Package web hosts the arcade in a browser: an embedded canvas page
// talks to a per-connection session controller over a WebSocket,
// sending raw device events and receiving projected frames.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

//go:embed static
var staticFiles embed.FS

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string
	// Arcade is the game configuration every connection plays with.
	Arcade config.Arcade
	// Seed fixes every round's seed when non-zero.
	Seed int64
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Arcade:  config.Defaults(),
	}
}

// Server serves the canvas page and the game socket.
type Server struct {
	config   Config
	saver    session.Saver
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a web server. saver may be nil.
func NewServer(cfg Config, saver session.Saver, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		config: cfg,
		saver:  saver,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler returns the HTTP routes: the page at / and the socket at /ws.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(static)))
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("client connected")

	c := newConnection(ws, s.newController(logger), logger)
	c.serve(r.Context())

	logger.Info("client disconnected")
}

func (s *Server) newController(logger *log.Logger) func(session.Hooks) *session.Controller {
	return func(hooks session.Hooks) *session.Controller {
		opts := []session.Option{session.WithLogger(logger), session.WithHooks(hooks)}
		if s.saver != nil {
			opts = append(opts, session.WithSaver(s.saver))
		}
		if s.config.Seed != 0 {
			seed := s.config.Seed
			opts = append(opts, session.WithSeed(func() int64 { return seed }))
		}
		return session.New(s.config.Arcade, opts...)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
