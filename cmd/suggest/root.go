package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"designflow/internal/ai"
	"designflow/internal/config"
	"designflow/internal/db"
	applog "designflow/internal/log"
	"designflow/internal/studio"
	"designflow/internal/upload"
)

// cliWorkspaceID tags analyses recorded from the command line.
const cliWorkspaceID = "cli"

var errAnalysisUnavailable = errors.New("layout analysis unavailable")

var (
	loadConfigFunc    = config.Load
	configureDatabase = db.Configure
	newAnalyzerFunc   = func(cfg config.AIConfig) (ai.Analyzer, error) {
		client, err := ai.NewClient(ai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

type suggestOptions struct {
	model        string
	timeout      time.Duration
	maxDimension int
	record       bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &suggestOptions{}

	cmd := &cobra.Command{
		Use:           "suggest <image>",
		Short:         "Ask Gemini for typography and layout suggestions on a screenshot",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.model, "model", "", "Gemini model to use instead of GEMINI_MODEL")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Request timeout instead of GEMINI_TIMEOUT")
	cmd.Flags().IntVar(&opts.maxDimension, "max-dimension", 0, "Longest image edge sent to the model instead of UPLOAD_MAX_DIMENSION")
	cmd.Flags().BoolVar(&opts.record, "record", false, "Store the outcome in the analysis log of DATABASE_URL")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runSuggest(cmd *cobra.Command, path string, opts *suggestOptions) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("image path must not be empty")
	}
	if opts.verbose {
		if err := applog.SetLevel("debug"); err != nil {
			return err
		}
	}

	cfg, err := loadConfigFunc()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.model != "" {
		cfg.AI.Model = opts.model
	}
	if opts.timeout > 0 {
		cfg.AI.Timeout = opts.timeout
	}
	if opts.maxDimension > 0 {
		cfg.Upload.MaxDimension = opts.maxDimension
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	img, err := upload.Normalize(filepath.Base(path), data, upload.Options{MaxDimension: cfg.Upload.MaxDimension, MaxPixels: cfg.Upload.MaxPixels})
	if err != nil {
		return fmt.Errorf("normalise image: %w", err)
	}

	analyzer, err := newAnalyzerFunc(cfg.AI)
	if err != nil {
		return fmt.Errorf("configure gemini: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	started := time.Now()
	suggestion := ai.NewGateway(analyzer).RequestSuggestion(ctx, img.DataURL)
	elapsed := time.Since(started)

	outcome := studio.ClassifyResult(suggestion)

	if opts.record {
		if err := recordOutcome(ctx, cfg.Database, studio.AnalysisRecord{
			WorkspaceID:     cliWorkspaceID,
			ImageDigest:     img.Digest,
			Outcome:         outcome,
			Duration:        elapsed,
			SuggestionChars: len(suggestion),
		}); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(img, suggestion, outcome, elapsed))
	if outcome == studio.OutcomeFallback {
		return errAnalysisUnavailable
	}
	return nil
}

func recordOutcome(ctx context.Context, cfg config.DatabaseConfig, record studio.AnalysisRecord) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return fmt.Errorf("--record needs DATABASE_URL to be set")
	}
	database, err := configureDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeDatabase(database)

	if err := db.NewAnalysisLog(database).RecordAnalysis(ctx, record); err != nil {
		return fmt.Errorf("record analysis: %w", err)
	}
	return nil
}

func closeDatabase(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
