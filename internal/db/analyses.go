package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"designflow/internal/studio"
	"designflow/models"
)

// AnalysisLog stores one row per finished layout analysis.
type AnalysisLog struct {
	db *gorm.DB
}

// NewAnalysisLog returns a log writing to database.
func NewAnalysisLog(database *gorm.DB) *AnalysisLog {
	return &AnalysisLog{db: database}
}

// RecordAnalysis implements studio.Recorder.
func (l *AnalysisLog) RecordAnalysis(ctx context.Context, record studio.AnalysisRecord) error {
	row := models.Analysis{
		WorkspaceID:     record.WorkspaceID,
		ImageDigest:     record.ImageDigest,
		Outcome:         string(record.Outcome),
		DurationMS:      record.Duration.Milliseconds(),
		SuggestionChars: record.SuggestionChars,
	}
	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record analysis: %w", err)
	}
	return nil
}

// Recent returns up to limit analyses for workspaceID, newest first.
func (l *AnalysisLog) Recent(ctx context.Context, workspaceID string, limit int) ([]models.Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []models.Analysis
	err := l.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return rows, nil
}
