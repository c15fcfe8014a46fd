package server

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kyaoi/chronoline/internal/timeline"
)

// Config holds server configuration.
type Config struct {
	Addr     string
	Title    string
	Theme    timeline.Theme // theme used when the request does not pick one
	AllowAll bool           // allow all CORS origins
}

// Server serves the timeline page and a small JSON API. Selection state
// travels in the query string, so handlers share nothing but the timeline.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	live       *hub

	mu sync.RWMutex
	tl *timeline.Timeline
}

// New creates a server for tl.
func New(cfg Config, tl *timeline.Timeline) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Theme == "" {
		cfg.Theme = timeline.Light
	}
	s := &Server{cfg: cfg, tl: tl, live: newHub()}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived; kept out of the request timeout.
	r.Get("/live", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/", s.handlePage)
		r.Route("/api/events", func(r chi.Router) {
			r.Get("/", s.handleEvents)
			r.Get("/{year}", s.handleEvent)
		})
	})
	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	log.Printf("chronoline server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
// Shutting down before Start makes Start return http.ErrServerClosed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.live.closeAll()
	return s.httpServer.Shutdown(ctx)
}

// SetTimeline replaces the served events and tells open pages to reload.
func (s *Server) SetTimeline(tl *timeline.Timeline) {
	s.mu.Lock()
	s.tl = tl
	s.mu.Unlock()
	s.live.broadcast(liveMessage{Type: "reload", Events: tl.Len()})
}

func (s *Server) current() *timeline.Timeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tl
}

// StateFromQuery applies the query parameters year, focus, details and
// theme to the initial state. Unknown or malformed values are ignored.
func StateFromQuery(tl *timeline.Timeline, q map[string][]string, fallback timeline.Theme) timeline.State {
	get := func(key string) string {
		if v := q[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	theme := fallback
	if t, err := timeline.ParseTheme(get("theme")); err == nil {
		theme = t
	}
	st := timeline.Initial(tl, theme)

	if year, err := strconv.Atoi(get("year")); err == nil {
		var ok bool
		if st, ok = timeline.Activate(tl, st, year); !ok {
			log.Printf("ignoring unknown year %d", year)
		}
	}
	if focus, err := strconv.Atoi(get("focus")); err == nil {
		st = timeline.MoveFocus(tl, st, focus-st.Focus)
	}
	if year, err := strconv.Atoi(get("details")); err == nil {
		var ok bool
		if st, ok = timeline.OpenDetails(tl, st, year); !ok {
			log.Printf("ignoring details for unknown year %d", year)
		}
	}
	return st
}
