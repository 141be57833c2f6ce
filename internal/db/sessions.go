package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applog "designflow/internal/log"
	"designflow/models"
)

// SessionStore persists scs sessions in the sessions table.
type SessionStore struct {
	db          *gorm.DB
	stopCleanup chan struct{}
	now         func() time.Time
}

// NewSessionStore returns a store that deletes expired sessions every five
// minutes.
func NewSessionStore(database *gorm.DB) *SessionStore {
	return NewSessionStoreWithCleanupInterval(database, 5*time.Minute)
}

// NewSessionStoreWithCleanupInterval returns a store that deletes expired
// sessions every interval. A zero interval disables the background cleanup.
func NewSessionStoreWithCleanupInterval(database *gorm.DB, interval time.Duration) *SessionStore {
	s := &SessionStore{db: database, now: time.Now}
	if interval > 0 {
		s.stopCleanup = make(chan struct{})
		go s.startCleanup(interval)
	}
	return s
}

// Find returns the data for a live session token.
func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

// FindCtx is Find with a request context.
func (s *SessionStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("token = ? AND expiry > ?", token, s.now().UTC()).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find session: %w", err)
	}
	return session.Data, true, nil
}

// Commit inserts or replaces the session data for token.
func (s *SessionStore) Commit(token string, data []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, data, expiry)
}

// CommitCtx is Commit with a request context.
func (s *SessionStore) CommitCtx(ctx context.Context, token string, data []byte, expiry time.Time) error {
	session := models.Session{Token: token, Data: data, Expiry: expiry.UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expiry"}),
	}).Create(&session).Error
	if err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Delete removes the session for token.
func (s *SessionStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

// DeleteCtx is Delete with a request context.
func (s *SessionStore) DeleteCtx(ctx context.Context, token string) error {
	if err := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes every expired session and returns how many were removed.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expiry <= ?", s.now().UTC()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *SessionStore) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			removed, err := s.DeleteExpired(context.Background())
			if err != nil {
				applog.Error(context.Background(), "session cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				applog.Debug(context.Background(), "expired sessions removed", "count", removed)
			}
		case <-s.stopCleanup:
			return
		}
	}
}

// StopCleanup terminates the background cleanup goroutine.
func (s *SessionStore) StopCleanup() {
	if s.stopCleanup != nil {
		close(s.stopCleanup)
		s.stopCleanup = nil
	}
}
