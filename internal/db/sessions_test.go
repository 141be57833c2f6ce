package db

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSessionStoreCommitFindDelete(t *testing.T) {
	t.Parallel()

	store := NewSessionStoreWithCleanupInterval(openSQLite(t), 0)
	expiry := time.Now().Add(time.Hour)

	if err := store.Commit("token", []byte("first"), expiry); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := store.Commit("token", []byte("second"), expiry); err != nil {
		t.Fatalf("commit replacement: %v", err)
	}

	data, found, err := store.Find("token")
	if err != nil || !found {
		t.Fatalf("find: found=%t err=%v", found, err)
	}
	if !bytes.Equal(data, []byte("second")) {
		t.Fatalf("expected replaced data, got %q", data)
	}

	if err := store.Delete("token"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, err := store.Find("token"); err != nil || found {
		t.Fatalf("expected session to be gone: found=%t err=%v", found, err)
	}
}

func TestSessionStoreIgnoresExpiredSessions(t *testing.T) {
	t.Parallel()

	store := NewSessionStoreWithCleanupInterval(openSQLite(t), 0)
	ctx := context.Background()

	if err := store.CommitCtx(ctx, "stale", []byte("old"), time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("commit stale: %v", err)
	}
	if err := store.CommitCtx(ctx, "live", []byte("new"), time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("commit live: %v", err)
	}

	if _, found, err := store.FindCtx(ctx, "stale"); err != nil || found {
		t.Fatalf("expected expired session to be hidden: found=%t err=%v", found, err)
	}

	removed, err := store.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one expired session removed, got %d", removed)
	}
	if _, found, _ := store.FindCtx(ctx, "live"); !found {
		t.Fatal("expected live session to survive cleanup")
	}
}

func TestSessionStoreStopCleanupIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewSessionStoreWithCleanupInterval(openSQLite(t), time.Hour)
	store.StopCleanup()
	store.StopCleanup()
}
