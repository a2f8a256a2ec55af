package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/intelligrit/travel-optimizer/internal/form"
	"github.com/intelligrit/travel-optimizer/internal/store"
	"github.com/intelligrit/travel-optimizer/internal/view"
)

//go:embed all:static
var staticFS embed.FS

// Planner is the remote planning service as seen by the web layer.
type Planner interface {
	form.CountrySource
	form.PlanGenerator
}

// Server serves the trip planner page and its form actions.
type Server struct {
	Store    *store.Store
	Planner  Planner
	Renderer *view.Renderer
	Logger   *slog.Logger
	Addr     string

	// Basemap is the file served at /world-map.png. A missing file only
	// dims the map.
	Basemap string

	// SessionTTL drops sessions idle for longer than this. Zero keeps them
	// until the process exits.
	SessionTTL time.Duration

	// CountriesTimeout bounds the background countries fetch for a new
	// session. Zero means 10s.
	CountriesTimeout time.Duration

	loads sync.WaitGroup
}

// Handler builds the HTTP routes.
func (s *Server) Handler() (http.Handler, error) {
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /world-map.png", s.handleBasemap)

	// API endpoints
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/countries", s.handleCountries)

	// Form actions
	mux.HandleFunc("POST /actions/fields", s.action(false, applyFields))
	mux.HandleFunc("POST /actions/chain/move", s.action(false, moveStop))
	mux.HandleFunc("POST /actions/chain/remove", s.action(false, removeStop))
	mux.HandleFunc("POST /actions/chain/add", s.action(false, addStop))
	mux.HandleFunc("POST /actions/chain/reset", s.action(false, resetChain))
	mux.HandleFunc("POST /actions/interests/toggle-open", s.action(true, toggleOpen))
	mux.HandleFunc("POST /actions/interests/toggle", s.action(true, toggleInterest))
	mux.HandleFunc("POST /actions/interests/all", s.action(true, selectAll))
	mux.HandleFunc("POST /actions/interests/clear", s.action(true, clearInterests))
	mux.HandleFunc("POST /actions/generate", s.handleGenerate)

	// Static files
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating sub filesystem: %w", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	return s.logRequests(mux), nil
}

// ListenAndServe starts the HTTP server and stops when ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: s.Addr, Handler: h}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if s.SessionTTL > 0 {
		go s.pruneSessions(ctx)
	}

	s.Logger.Info("serving", "url", "http://"+s.Addr)
	err = srv.ListenAndServe()
	s.loads.Wait()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) pruneSessions(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := s.Store.Prune(now.Add(-s.SessionTTL))
			if err != nil {
				s.Logger.Warn("pruning sessions", "error", err)
				continue
			}
			if n > 0 {
				s.Logger.Debug("pruned sessions", "count", n)
			}
		}
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.Debug("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}
