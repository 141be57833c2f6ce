package studio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designflow/internal/ai"
	"designflow/internal/design"
	"designflow/internal/upload"
)

type suggesterFunc func(ctx context.Context, imageData string) string

func (f suggesterFunc) RequestSuggestion(ctx context.Context, imageData string) string {
	return f(ctx, imageData)
}

type failingAnalyzer struct{}

func (failingAnalyzer) AnalyzeLayout(context.Context, ai.InlineImage) (string, error) {
	return "", errors.New("boom")
}

type memoryRecorder struct {
	mu      sync.Mutex
	records []AnalysisRecord
}

func (r *memoryRecorder) RecordAnalysis(_ context.Context, record AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

func (r *memoryRecorder) all() []AnalysisRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]AnalysisRecord(nil), r.records...)
}

func image(name string) upload.Image {
	return upload.Image{Name: name, Digest: name + "-digest", DataURL: "data:image/jpeg;base64," + name}
}

func TestOpenStartsFromDefaults(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	snap := store.Open("ws")
	assert.Equal(t, design.Default(), snap.Design)
	assert.Equal(t, StatusIdle, snap.Status)
	assert.False(t, snap.HasImage())
	assert.False(t, snap.Analyzing())

	_, ok := store.Snapshot("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestUpdateReplacesConfiguration(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	before := store.Open("ws")

	after, err := store.Update("ws", design.Patch{LayoutMode: design.Ptr(design.LayoutAsymmetric)})
	require.NoError(t, err)
	assert.Equal(t, design.LayoutAsymmetric, after.Design.LayoutMode)
	assert.Equal(t, design.LayoutModernCard, before.Design.LayoutMode)

	fresh, ok := store.Snapshot("ws")
	require.True(t, ok)
	assert.Equal(t, after.Design, fresh.Design)
}

func TestUpdateClampsNumbersAndRejectsEnums(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	font := design.Default().FontConfig
	font.Opacity = 3
	snap, err := store.Update("ws", design.Patch{FontConfig: &font, CornerRadius: design.Ptr(-4)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, snap.Design.FontConfig.Opacity)
	assert.Equal(t, 0, snap.Design.CornerRadius)

	_, err = store.Update("ws", design.Patch{ShadowIntensity: design.Ptr(design.ShadowIntensity("extreme"))})
	require.ErrorIs(t, err, ErrInvalidDesign)
	var verr *design.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "shadowIntensity", verr.Field)

	current, _ := store.Snapshot("ws")
	assert.Equal(t, design.ShadowSoft, current.Design.ShadowIntensity)
}

func TestUploadWithFailingGatewaySettlesWithFallback(t *testing.T) {
	t.Parallel()

	recorder := &memoryRecorder{}
	store := NewStore(ai.NewGateway(failingAnalyzer{}), WithRecorder(recorder))

	pending := store.Upload(context.Background(), "ws", image("shot"))
	assert.Equal(t, StatusPending, pending.Status)
	assert.Equal(t, AnalyzingMessage, pending.Feedback)
	assert.True(t, pending.HasImage())

	store.Wait()
	snap, _ := store.Snapshot("ws")
	assert.Equal(t, ai.FallbackMessage, snap.Feedback)
	assert.Equal(t, StatusSettled, snap.Status)
	assert.False(t, snap.Analyzing())

	records := recorder.all()
	require.Len(t, records, 1)
	assert.Equal(t, OutcomeFallback, records[0].Outcome)
	assert.Equal(t, "shot-digest", records[0].ImageDigest)
}

func TestUploadSubstitutesCompleteMessageForEmptyResult(t *testing.T) {
	t.Parallel()

	store := NewStore(suggesterFunc(func(context.Context, string) string { return "" }))
	store.Upload(context.Background(), "ws", image("shot"))
	store.Wait()

	snap, _ := store.Snapshot("ws")
	assert.Equal(t, CompleteMessage, snap.Feedback)
	assert.Equal(t, StatusSettled, snap.Status)
}

func TestUploadDiscardsSupersededResult(t *testing.T) {
	t.Parallel()

	release := map[string]chan struct{}{
		"data:image/jpeg;base64,first":  make(chan struct{}),
		"data:image/jpeg;base64,second": make(chan struct{}),
	}
	var cancelledMu sync.Mutex
	cancelled := map[string]bool{}

	store := NewStore(suggesterFunc(func(ctx context.Context, data string) string {
		<-release[data]
		cancelledMu.Lock()
		cancelled[data] = ctx.Err() != nil
		cancelledMu.Unlock()
		return "feedback for " + data
	}))

	store.Upload(context.Background(), "ws", image("first"))
	snap := store.Upload(context.Background(), "ws", image("second"))
	assert.Equal(t, uint64(2), snap.Sequence)

	close(release["data:image/jpeg;base64,first"])
	require.Eventually(t, func() bool { return store.InFlight() == 1 }, time.Second, 5*time.Millisecond)

	still, _ := store.Snapshot("ws")
	assert.Equal(t, StatusPending, still.Status)
	assert.Equal(t, AnalyzingMessage, still.Feedback)
	assert.Equal(t, "second", still.Image.Name)

	close(release["data:image/jpeg;base64,second"])
	store.Wait()

	final, _ := store.Snapshot("ws")
	assert.Equal(t, StatusSettled, final.Status)
	assert.Equal(t, "feedback for data:image/jpeg;base64,second", final.Feedback)

	cancelledMu.Lock()
	defer cancelledMu.Unlock()
	assert.True(t, cancelled["data:image/jpeg;base64,first"])
	assert.False(t, cancelled["data:image/jpeg;base64,second"])
}

func TestUploadOutlivesRequestContext(t *testing.T) {
	t.Parallel()

	store := NewStore(suggesterFunc(func(ctx context.Context, _ string) string {
		if ctx.Err() != nil {
			return "cancelled"
		}
		return "fine"
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store.Upload(ctx, "ws", image("shot"))
	store.Wait()

	snap, _ := store.Snapshot("ws")
	assert.Equal(t, "fine", snap.Feedback)
}

func TestCloseCancelsRunningAnalyses(t *testing.T) {
	t.Parallel()

	store := NewStore(suggesterFunc(func(ctx context.Context, _ string) string {
		<-ctx.Done()
		return ai.FallbackMessage
	}))
	store.Upload(context.Background(), "ws", image("shot"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, store.Close(ctx))
	assert.Equal(t, 0, store.InFlight())

	snap, _ := store.Snapshot("ws")
	assert.Equal(t, ai.FallbackMessage, snap.Feedback)
}

func TestPruneDropsStaleWorkspaces(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	store := NewStore(nil, WithClock(clock))
	store.Open("old")

	mu.Lock()
	now = now.Add(2 * time.Hour)
	mu.Unlock()
	store.Open("new")

	assert.Equal(t, 1, store.Prune(time.Hour))
	_, ok := store.Snapshot("old")
	assert.False(t, ok)
	_, ok = store.Snapshot("new")
	assert.True(t, ok)
}

func TestNewWorkspaceIDIsRandomHex(t *testing.T) {
	t.Parallel()

	a, b := NewWorkspaceID(), NewWorkspaceID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestApplyBuildsPatchFromCurrentDesign(t *testing.T) {
	t.Parallel()

	store := NewStore(nil)
	toggle := func(current design.Configuration) design.Patch {
		return design.Patch{UseGradient: design.Ptr(!current.UseGradient)}
	}

	snap, err := store.Apply("ws", toggle)
	require.NoError(t, err)
	assert.False(t, snap.Design.UseGradient)

	snap, err = store.Apply("ws", toggle)
	require.NoError(t, err)
	assert.True(t, snap.Design.UseGradient)
}

func TestClassifyResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, OutcomeFallback, ClassifyResult(ai.FallbackMessage))
	assert.Equal(t, OutcomeEmpty, ClassifyResult(""))
	assert.Equal(t, OutcomeSuggested, ClassifyResult("- Increase contrast"))
}
