// Package http serves the guest dashboard: a server-rendered page whose
// table partials re-render on every filter change while the KPI cards stay
// pinned to the whole confirmed population.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"invitados/internal/cache"
	"invitados/internal/core"
	applog "invitados/internal/log"
	"invitados/internal/services"
	appweb "invitados/web"
)

// Dashboard is the data layer the handlers read from.
type Dashboard interface {
	Reload(ctx context.Context) error
	Loaded() bool
	Snapshot() (services.Snapshot, bool)
	FilteredGuests(f core.FilterState) []core.GuestRecord
	Summary() core.Summary
	Sectors() []string
}

// Options tunes server behavior beyond the defaults.
type Options struct {
	// ReloadTimeout bounds a manual reload round-trip. Zero means 30s.
	ReloadTimeout time.Duration
	Logger        *applog.Logger
}

type Server struct {
	http.Server
	dash          Dashboard
	templates     *template.Template
	logger        *applog.Logger
	requestLog    *applog.StructuredLogger
	reloadTimeout time.Duration

	rateLimiter *rateLimiter
	metrics     *securityMetrics

	// Rendered partials keyed by snapshot generation and filter state.
	partialCache *cache.LRUCache[string]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, dash Dashboard, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentHTTP)
	}
	reloadTimeout := opts.ReloadTimeout
	if reloadTimeout <= 0 {
		reloadTimeout = 30 * time.Second
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		dash:          dash,
		logger:        logger,
		requestLog:    applog.NewStructuredLogger(logger),
		reloadTimeout: reloadTimeout,
		rateLimiter:   newRateLimiter(),
		metrics:       &securityMetrics{},
		partialCache:  cache.NewLRUCache[string](200, 5*time.Minute),
		cacheManager:  cache.NewManager(logger.WithComponent(applog.ComponentCache)),
	}
	s.cacheManager.Register(s.partialCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		logger.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		logger.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	// UI partials re-rendered on every filter change
	mux.HandleFunc("/ui/guests", s.withSecurityHeaders(s.handleGuestsPartial))
	mux.HandleFunc("/ui/summary", s.withSecurityHeaders(s.handleSummaryPartial))
	mux.HandleFunc("/ui/costs", s.withSecurityHeaders(s.handleCostsPartial))
	// JSON API
	mux.HandleFunc("/api/summary", s.withSecurityHeaders(s.handleAPISummary))
	mux.HandleFunc("/api/guests", s.withSecurityHeaders(s.handleAPIGuests))
	// Manual refresh
	mux.HandleFunc("/reload", s.withSecurityHeaders(s.handleReload))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
