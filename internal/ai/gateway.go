package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	applog "designflow/internal/log"
)

// FallbackMessage is returned whenever a suggestion cannot be produced.
const FallbackMessage = "Could not analyze the layout at this time."

// Analyzer produces layout feedback for an inline image. *Client implements it.
type Analyzer interface {
	AnalyzeLayout(ctx context.Context, image InlineImage) (string, error)
}

// Gateway turns uploads into suggestion text and never reports failure to its
// caller.
type Gateway struct {
	analyzer Analyzer
}

// NewGateway wraps analyzer. A nil analyzer yields a gateway that always
// answers with FallbackMessage.
func NewGateway(analyzer Analyzer) *Gateway {
	return &Gateway{analyzer: analyzer}
}

// Enabled reports whether an analyzer is configured.
func (g *Gateway) Enabled() bool {
	return g != nil && g.analyzer != nil
}

var errNoAnalyzer = errors.New("ai: no analyzer configured")

// RequestSuggestion sends imageData, either a data URL or a bare base64
// payload, and returns the response text verbatim. Every failure, including a
// panic inside the analyzer, is logged and replaced by FallbackMessage.
func (g *Gateway) RequestSuggestion(ctx context.Context, imageData string) (suggestion string) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			applog.Error(ctx, "layout analysis panicked", "panic", fmt.Sprint(r))
			suggestion = FallbackMessage
		}
	}()

	text, err := g.analyze(ctx, imageData)
	if err != nil {
		applog.Error(ctx, "layout analysis failed", "error", err, "elapsed", time.Since(started).String())
		return FallbackMessage
	}
	applog.Debug(ctx, "layout analysis completed", "chars", len(text), "elapsed", time.Since(started).String())
	return text
}

func (g *Gateway) analyze(ctx context.Context, imageData string) (string, error) {
	if !g.Enabled() {
		return "", errNoAnalyzer
	}
	return g.analyzer.AnalyzeLayout(ctx, InlineImage{
		MIMEType: "image/jpeg",
		Data:     StripDataURL(imageData),
	})
}

// StripDataURL returns the payload after the first comma of a data URL, or
// the input unchanged when there is nothing after a comma.
func StripDataURL(imageData string) string {
	if _, payload, ok := strings.Cut(imageData, ","); ok && payload != "" {
		return payload
	}
	return imageData
}
