package db

import (
	"context"
	"testing"
	"time"

	"designflow/internal/studio"
)

func TestAnalysisLogRecordsAndLists(t *testing.T) {
	t.Parallel()

	log := NewAnalysisLog(openSQLite(t))
	ctx := context.Background()

	records := []studio.AnalysisRecord{
		{WorkspaceID: "ws", ImageDigest: "aaa", Outcome: studio.OutcomeFallback, Duration: 1500 * time.Millisecond},
		{WorkspaceID: "other", ImageDigest: "bbb", Outcome: studio.OutcomeSuggested},
		{WorkspaceID: "ws", ImageDigest: "ccc", Outcome: studio.OutcomeSuggested, SuggestionChars: 42},
	}
	for _, record := range records {
		if err := log.RecordAnalysis(ctx, record); err != nil {
			t.Fatalf("record analysis: %v", err)
		}
	}

	rows, err := log.Recent(ctx, "ws", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two rows for workspace, got %d", len(rows))
	}
	if rows[0].ImageDigest != "ccc" || rows[0].SuggestionChars != 42 {
		t.Fatalf("expected newest row first, got %+v", rows[0])
	}
	if rows[1].Outcome != string(studio.OutcomeFallback) || rows[1].DurationMS != 1500 {
		t.Fatalf("unexpected oldest row: %+v", rows[1])
	}
}
