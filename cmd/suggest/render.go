package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"designflow/internal/studio"
	"designflow/internal/upload"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3b82f6")).
			Padding(0, 1)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
)

func renderReport(img upload.Image, suggestion string, outcome studio.Outcome, elapsed time.Duration) string {
	header := titleStyle.Render("Layout suggestions for " + img.Name)
	meta := mutedStyle.Render(fmt.Sprintf("%dx%d %s, digest %s, %s",
		img.Width, img.Height, img.SourceFormat, img.ShortDigest(), elapsed.Round(time.Millisecond)))

	body := strings.TrimSpace(suggestion)
	switch outcome {
	case studio.OutcomeFallback:
		body = warningStyle.Render(body)
	case studio.OutcomeEmpty:
		body = mutedStyle.Render(studio.CompleteMessage)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, meta, panelStyle.Render(body))
}
