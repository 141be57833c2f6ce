package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"designflow/internal/db"
	"designflow/internal/handlers"
	applog "designflow/internal/log"
	"designflow/internal/studio"
	"designflow/internal/upload"
)

const (
	defaultPruneInterval = 10 * time.Minute
	shutdownTimeout      = 5 * time.Second
)

// Config captures the runtime configuration for the HTTP server.
type Config struct {
	Addr     string
	Session  SessionConfig
	Upload   UploadConfig
	Database *gorm.DB
	// Studio holds the workspaces. A store without a suggester is created
	// when nil, so every analysis settles with the fallback message.
	Studio *studio.Store
	// PruneInterval is how often idle workspaces older than the session
	// lifetime are dropped.
	PruneInterval time.Duration
}

// SessionConfig controls session behavior for the HTTP server.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// UploadConfig bounds screenshot uploads.
type UploadConfig struct {
	MaxBytes int64
	Options  upload.Options
}

// Server wraps an http.Server together with the studio it serves.
type Server struct {
	config       Config
	httpServer   *http.Server
	studio       *studio.Store
	sessionStore *db.SessionStore

	stopPrune chan struct{}
	stopOnce  sync.Once
}

// New builds a new Server using the provided configuration.
func New(cfg Config) (*Server, error) {
	applog.Debug(context.Background(), "initializing server",
		"addr", cfg.Addr,
		"sessionLifetime", cfg.Session.Lifetime.String(),
		"sessionCookie", cfg.Session.CookieName,
	)

	sessionCfg := cfg.Session
	if sessionCfg.Lifetime <= 0 {
		applog.Debug(context.Background(), "session lifetime not provided, using default")
		sessionCfg.Lifetime = 12 * time.Hour
	}
	if strings.TrimSpace(sessionCfg.CookieName) == "" {
		applog.Debug(context.Background(), "session cookie name not provided, using default")
		sessionCfg.CookieName = "designflow_session"
	}
	cfg.Session = sessionCfg

	if cfg.PruneInterval <= 0 {
		cfg.PruneInterval = defaultPruneInterval
	}

	store := cfg.Studio
	if store == nil {
		applog.Debug(context.Background(), "studio store not provided, analyses will use the fallback message")
		store = studio.NewStore(nil)
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = sessionCfg.Lifetime
	sessionManager.Cookie.Name = sessionCfg.CookieName
	sessionManager.Cookie.Domain = sessionCfg.CookieDomain
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = sessionCfg.CookieSecure

	var sessionStore *db.SessionStore
	if cfg.Database != nil {
		sessionStore = db.NewSessionStore(cfg.Database)
		sessionManager.Store = sessionStore
		handlers.ConfigureAnalyses(db.NewAnalysisLog(cfg.Database))
		applog.Debug(context.Background(), "database backed sessions enabled")
	} else {
		handlers.ConfigureAnalyses(nil)
	}

	applog.Debug(context.Background(), "session manager configured",
		"cookieName", sessionCfg.CookieName,
		"cookieDomain", sessionCfg.CookieDomain,
		"cookieSecure", sessionCfg.CookieSecure,
	)

	handlers.Configure(sessionManager, store)
	handlers.ConfigureUploads(cfg.Upload.MaxBytes, cfg.Upload.Options)

	applog.Debug(context.Background(), "handler dependencies configured")

	handler := sessionManager.LoadAndSave(newRouter())

	applog.Debug(context.Background(), "http handler chain prepared")

	return &Server{
		config: cfg,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		studio:       store,
		sessionStore: sessionStore,
		stopPrune:    make(chan struct{}),
	}, nil
}

// Start begins pruning idle workspaces and serves HTTP traffic using the
// underlying http.Server.
func (s *Server) Start() error {
	go s.pruneLoop()
	applog.Debug(context.Background(), "server starting listener", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) pruneLoop() {
	ticker := time.NewTicker(s.config.PruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.pruneWorkspaces()
		case <-s.stopPrune:
			return
		}
	}
}

func (s *Server) pruneWorkspaces() int {
	removed := s.studio.Prune(s.config.Session.Lifetime)
	if removed > 0 {
		applog.Debug(context.Background(), "idle workspaces pruned", "count", removed, "remaining", s.studio.Len())
	}
	return removed
}

// Stop gracefully shuts down the HTTP server, then cancels and drains running
// analyses. All steps run within one timeout.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	applog.Debug(ctx, "server initiating graceful shutdown")

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}

	s.stopOnce.Do(func() { close(s.stopPrune) })

	if err := s.studio.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	applog.Debug(ctx, "studio drained", "inFlight", s.studio.InFlight())

	if s.sessionStore != nil {
		s.sessionStore.StopCleanup()
	}
	return errors.Join(errs...)
}

// Handler exposes the configured HTTP handler, enabling integration tests.
func (s *Server) Handler() http.Handler {
	applog.Debug(context.Background(), "server handler requested")
	return s.httpServer.Handler
}
