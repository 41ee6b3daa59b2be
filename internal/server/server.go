// Package server exposes game sessions over HTTP and websockets so a
// browser viewer can step through a game by replaying transition ops.
package server

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lgbarn/pgn-replay-go/internal/config"
	"github.com/lgbarn/pgn-replay-go/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server is the viewer API.
type Server struct {
	cfg        config.ServerConfig
	defaults   config.SessionConfig
	squareSize int
	sessions   *Registry
	upgrader   websocket.Upgrader
	log        *zap.SugaredLogger
}

// New creates a server from cfg. A nil logger discards output.
func New(cfg *config.Config, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	s := &Server{
		cfg:        cfg.Server,
		defaults:   cfg.Session,
		squareSize: cfg.Output.SquareSize,
		sessions:   NewRegistry(cfg.Server.MaxSessions),
		log:        log,
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

// checkOrigin accepts every origin when none are configured.
func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, r.Header.Get("Origin"))
}

// Router returns the HTTP handler serving the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.HandleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.HandleGet)
			r.Delete("/", s.HandleDelete)
			r.Post("/forward", s.HandleForward)
			r.Post("/backward", s.HandleBackward)
			r.Post("/seek", s.HandleSeek)
			r.Post("/annotations", s.HandleAnnotate)
			r.Post("/flip", s.HandleFlip)
			r.Get("/transitions", s.HandleTransitions)
			r.Get("/board.svg", s.HandleBoardSVG)
			r.Get("/ws", s.HandleWebsocket)
		})
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Server is running on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
