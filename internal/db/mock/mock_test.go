package mock

import (
	"context"
	"testing"
	"time"

	"designflow/models"
)

func TestOpenMigratesSchema(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := Open(ctx, t.Name())
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	for _, model := range []any{&models.Session{}, &models.Analysis{}} {
		if !database.Migrator().HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}

	session := models.Session{Token: "abc", Data: []byte("payload"), Expiry: time.Now().Add(time.Hour)}
	if err := database.WithContext(ctx).Create(&session).Error; err != nil {
		t.Fatalf("insert session: %v", err)
	}
}

func TestOpenSharesDataByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first, err := Open(ctx, t.Name())
	if err != nil {
		t.Fatalf("open first handle: %v", err)
	}
	if err := first.WithContext(ctx).Create(&models.Analysis{WorkspaceID: "ws", Outcome: "suggested"}).Error; err != nil {
		t.Fatalf("insert analysis: %v", err)
	}

	second, err := Open(ctx, t.Name())
	if err != nil {
		t.Fatalf("open second handle: %v", err)
	}
	var count int64
	if err := second.WithContext(ctx).Model(&models.Analysis{}).Count(&count).Error; err != nil {
		t.Fatalf("count analyses: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected shared data, got %d rows", count)
	}
}
