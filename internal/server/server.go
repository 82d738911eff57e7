// Package server sets up the mpv-remote HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mpvremote/internal/models"
	"mpvremote/internal/player"
	"mpvremote/internal/preferences"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Player is the slice of the player session the server needs.
type Player interface {
	Play(target string) error
}

// Dispatcher routes validated control commands to the player.
type Dispatcher interface {
	Dispatch(name, rawVal string) player.SendStatus
}

// History records playback starts and answers recent-play queries.
type History interface {
	RecordPlay(target string) (int64, error)
	RecentPlays(since time.Time, limit int) ([]models.HistoryEntry, error)
}

// Server holds the request dispatcher's collaborators.
type Server struct {
	prefs      *preferences.Preferences
	player     Player
	dispatcher Dispatcher
	history    History
	staticDir  string
}

// New wires up a request dispatcher.
func New(prefs *preferences.Preferences, p Player, d Dispatcher, h History, staticDir string) *Server {
	return &Server{
		prefs:      prefs,
		player:     p,
		dispatcher: d,
		history:    h,
		staticDir:  staticDir,
	}
}

// Router returns the HTTP handler. The auth check runs before any other
// handling; no path cleaning middleware is mounted, so the static asset
// guard sees raw request names.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.requireAuth)

	r.Get("/", s.handleIndex)
	r.Get("/static/*", s.handleStatic)
	r.Post("/dir", s.handleDir)
	r.Post("/play", s.handlePlay)
	r.Post("/control", s.handleControl)
	r.Get("/history", s.handleHistory)

	return r
}

// StartServer runs the HTTP server on the specified port until ctx is
// cancelled.
func StartServer(ctx context.Context, s *Server, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Msgf("mpv-remote listening on http://localhost%s", srv.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
