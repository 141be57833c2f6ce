// Package studio holds the per-session design workspaces: the current
// configuration, the uploaded screenshot and the state of its analysis.
package studio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"designflow/internal/ai"
	"designflow/internal/design"
	applog "designflow/internal/log"
	"designflow/internal/upload"
)

// Status is the analysis state of a workspace.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSettled Status = "settled"
)

const (
	// AnalyzingMessage is shown while a suggestion request is outstanding.
	AnalyzingMessage = "Gemini is analyzing your layout..."
	// CompleteMessage replaces an empty suggestion.
	CompleteMessage = "Analysis complete."
)

// ErrInvalidDesign wraps the validation failure of a rejected edit.
var ErrInvalidDesign = errors.New("studio: invalid design")

// Snapshot is an immutable copy of a workspace.
type Snapshot struct {
	WorkspaceID string
	Design      design.Configuration
	Image       upload.Image
	Status      Status
	Feedback    string
	// Sequence counts uploads; only the result for the current one is kept.
	Sequence  uint64
	UpdatedAt time.Time
}

// HasImage reports whether a screenshot has been uploaded.
func (s Snapshot) HasImage() bool {
	return s.Image.DataURL != ""
}

// Analyzing reports whether a suggestion request is outstanding.
func (s Snapshot) Analyzing() bool {
	return s.Status == StatusPending
}

// Outcome classifies a finished suggestion request.
type Outcome string

const (
	OutcomeSuggested  Outcome = "suggested"
	OutcomeEmpty      Outcome = "empty"
	OutcomeFallback   Outcome = "fallback"
	OutcomeSuperseded Outcome = "superseded"
)

// AnalysisRecord describes one finished suggestion request.
type AnalysisRecord struct {
	WorkspaceID     string
	ImageDigest     string
	Outcome         Outcome
	Duration        time.Duration
	SuggestionChars int
}

type workspace struct {
	mu     sync.Mutex
	snap   Snapshot
	cancel context.CancelFunc
}

// Store owns every workspace of the running process.
type Store struct {
	suggester Suggester
	recorder  Recorder
	now       func() time.Time

	mu         sync.Mutex
	workspaces map[string]*workspace

	base     context.Context
	stopBase context.CancelFunc
	inflight sync.WaitGroup
	running  atomic.Int64
}

// Option configures a Store.
type Option func(*Store)

// WithRecorder records every finished analysis.
func WithRecorder(r Recorder) Option {
	return func(s *Store) {
		s.recorder = r
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore returns an empty store that asks suggester for feedback.
func NewStore(suggester Suggester, opts ...Option) *Store {
	base, stop := context.WithCancel(context.Background())
	s := &Store{
		suggester:  suggester,
		now:        time.Now,
		workspaces: make(map[string]*workspace),
		base:       base,
		stopBase:   stop,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewWorkspaceID returns a random opaque workspace identifier.
func NewWorkspaceID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("studio: read random id: %v", err))
	}
	return hex.EncodeToString(b[:])
}

func (s *Store) workspace(id string) *workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.workspaces[id]
	if !ok {
		ws = &workspace{snap: Snapshot{
			WorkspaceID: id,
			Design:      design.Default(),
			Status:      StatusIdle,
			UpdatedAt:   s.now(),
		}}
		s.workspaces[id] = ws
	}
	return ws
}

// Open returns the workspace for id, creating it with the default design.
func (s *Store) Open(id string) Snapshot {
	ws := s.workspace(id)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.snap
}

// Snapshot returns the workspace for id without creating it.
func (s *Store) Snapshot(id string) (Snapshot, bool) {
	s.mu.Lock()
	ws, ok := s.workspaces[id]
	s.mu.Unlock()
	if !ok {
		return Snapshot{}, false
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.snap, true
}

// Update merges patch into the workspace design. Numeric fields are clamped
// into range; enum and colour violations reject the whole edit.
func (s *Store) Update(id string, patch design.Patch) (Snapshot, error) {
	return s.Apply(id, func(design.Configuration) design.Patch { return patch })
}

// Apply is Update with a patch built from the current design while the
// workspace is locked.
func (s *Store) Apply(id string, build func(current design.Configuration) design.Patch) (Snapshot, error) {
	ws := s.workspace(id)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	next := design.Clamp(design.Merge(ws.snap.Design, build(ws.snap.Design)))
	if err := design.Validate(next); err != nil {
		return ws.snap, fmt.Errorf("%w: %w", ErrInvalidDesign, err)
	}
	ws.snap.Design = next
	ws.snap.UpdatedAt = s.now()
	return ws.snap, nil
}

// Upload stores img in the workspace and starts its analysis. A request still
// running for an earlier upload is cancelled and its result discarded.
func (s *Store) Upload(ctx context.Context, id string, img upload.Image) Snapshot {
	ws := s.workspace(id)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.cancel != nil {
		ws.cancel()
	}
	ws.snap.Sequence++
	ws.snap.Image = img
	ws.snap.Status = StatusPending
	ws.snap.Feedback = AnalyzingMessage
	ws.snap.UpdatedAt = s.now()

	reqCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(s.base, cancel)
	ws.cancel = cancel

	s.begin()
	go func(seq uint64) {
		defer s.end()
		defer stop()
		defer cancel()
		s.analyze(reqCtx, id, seq, img)
	}(ws.snap.Sequence)

	return ws.snap
}

func (s *Store) analyze(ctx context.Context, id string, seq uint64, img upload.Image) {
	started := s.now()
	result := ai.FallbackMessage
	if s.suggester != nil {
		result = s.suggester.RequestSuggestion(ctx, img.DataURL)
	}

	outcome := ClassifyResult(result)
	if !s.settle(id, seq, result) {
		outcome = OutcomeSuperseded
	}

	applog.Debug(ctx, "analysis finished", "workspace", id, "sequence", seq, "outcome", string(outcome))
	if s.recorder == nil {
		return
	}
	record := AnalysisRecord{
		WorkspaceID:     id,
		ImageDigest:     img.Digest,
		Outcome:         outcome,
		Duration:        s.now().Sub(started),
		SuggestionChars: len(result),
	}
	if err := s.recorder.RecordAnalysis(context.WithoutCancel(ctx), record); err != nil {
		applog.Warn(ctx, "failed to record analysis", "workspace", id, "error", err)
	}
}

// ClassifyResult maps gateway text to the outcome recorded for it.
func ClassifyResult(result string) Outcome {
	switch result {
	case ai.FallbackMessage:
		return OutcomeFallback
	case "":
		return OutcomeEmpty
	default:
		return OutcomeSuggested
	}
}

// settle writes result when seq is still the current upload.
func (s *Store) settle(id string, seq uint64, result string) bool {
	s.mu.Lock()
	ws, ok := s.workspaces[id]
	s.mu.Unlock()
	if !ok {
		return false
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.snap.Sequence != seq {
		return false
	}
	if result == "" {
		result = CompleteMessage
	}
	ws.snap.Feedback = result
	ws.snap.Status = StatusSettled
	ws.snap.UpdatedAt = s.now()
	ws.cancel = nil
	return true
}

func (s *Store) begin() {
	s.inflight.Add(1)
	s.running.Add(1)
}

func (s *Store) end() {
	s.running.Add(-1)
	s.inflight.Done()
}

// InFlight returns the number of running analysis goroutines.
func (s *Store) InFlight() int {
	return int(s.running.Load())
}

// Len returns the number of open workspaces.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}

// Prune drops idle and settled workspaces untouched for longer than maxAge.
func (s *Store) Prune(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, ws := range s.workspaces {
		ws.mu.Lock()
		stale := ws.snap.Status != StatusPending && ws.snap.UpdatedAt.Before(cutoff)
		ws.mu.Unlock()
		if stale {
			delete(s.workspaces, id)
			removed++
		}
	}
	return removed
}

// Wait blocks until every running analysis has finished.
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Close cancels running analyses and waits for them, or for ctx to end.
func (s *Store) Close(ctx context.Context) error {
	s.stopBase()
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("studio: close: %w", ctx.Err())
	}
}
