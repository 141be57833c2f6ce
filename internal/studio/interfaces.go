package studio

import "context"

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go

// Suggester produces layout feedback for an image data URL. It must not fail;
// *ai.Gateway implements it.
type Suggester interface {
	RequestSuggestion(ctx context.Context, imageData string) string
}

// Recorder persists analysis records.
type Recorder interface {
	RecordAnalysis(ctx context.Context, record AnalysisRecord) error
}
