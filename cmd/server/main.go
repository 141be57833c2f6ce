package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"designflow/internal/ai"
	"designflow/internal/config"
	"designflow/internal/db"
	"designflow/internal/db/mock"
	applog "designflow/internal/log"
	"designflow/internal/server"
	"designflow/internal/studio"
	"designflow/internal/upload"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

var (
	loadConfigFunc       = config.Load
	setLogLevelFunc      = applog.SetLevel
	setLogFormatFunc     = applog.SetFormat
	newMockDatabaseFunc  = mock.New
	configureDatabase    = db.Configure
	newAnalyzerFunc      = newAnalyzer
	watchConfigFunc      = config.Watch
	newServerFunc        = func(cfg server.Config) (serverLifecycle, error) { return server.New(cfg) }
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}
	if strings.TrimSpace(cfg.Logging.Format) != "" {
		if err := setLogFormatFunc(cfg.Logging.Format); err != nil {
			applog.Error(ctx, "invalid log format", "format", cfg.Logging.Format, "error", err)
			return 1
		}
	}

	watching, err := watchConfigFunc(func(next config.Config) {
		if err := setLogLevelFunc(next.Logging.Level); err != nil {
			applog.Warn(ctx, "ignoring reloaded log level", "level", next.Logging.Level, "error", err)
			return
		}
		applog.Info(ctx, "log level reloaded", "level", next.Logging.Level)
	})
	if err != nil {
		applog.Warn(ctx, "config file will not be watched", "error", err)
	} else if watching {
		applog.Debug(ctx, "watching config file for log level changes")
	}

	database, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		return 1
	}

	analyzer, err := newAnalyzerFunc(cfg.AI)
	if err != nil {
		applog.Warn(ctx, "layout analysis disabled, suggestions will use the fallback message", "reason", err)
	}

	var storeOpts []studio.Option
	if database != nil {
		storeOpts = append(storeOpts, studio.WithRecorder(db.NewAnalysisLog(database)))
	}
	store := studio.NewStore(ai.NewGateway(analyzer), storeOpts...)

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Upload: server.UploadConfig{
			MaxBytes: cfg.Upload.MaxBytes,
			Options:  upload.Options{MaxDimension: cfg.Upload.MaxDimension, MaxPixels: cfg.Upload.MaxPixels},
		},
		Database: database,
		Studio:   store,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	sigCh, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		applog.Info(gctx, "starting http server", "addr", cfg.Server.Addr, "analysis", analyzer != nil)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			applog.Info(gctx, "shutting down http server", "signal", sig.String())
		case <-gctx.Done():
			applog.Debug(ctx, "http server exited, releasing resources")
		}
		if err := srv.Stop(); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		applog.Error(ctx, "server exited with error", "error", err)
		return 1
	}
	applog.Info(ctx, "server stopped")
	return 0
}

// openDatabase returns the configured database, the shared in-memory mock
// when requested, or nil when no database is configured.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch {
	case cfg.UseMock:
		applog.Info(ctx, "using in-memory mock database")
		return newMockDatabaseFunc(ctx)
	case strings.TrimSpace(cfg.URL) != "":
		return configureDatabase(cfg)
	default:
		applog.Info(ctx, "no database configured, sessions are kept in memory")
		return nil, nil
	}
}

// newAnalyzer builds the Gemini client. A nil analyzer is returned with the
// reason when no API key is configured.
func newAnalyzer(cfg config.AIConfig) (ai.Analyzer, error) {
	client, err := ai.NewClient(ai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	applog.Info(context.Background(), "layout analysis enabled", "model", client.Model())
	return client, nil
}
