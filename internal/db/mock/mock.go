package mock

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"designflow/internal/db"
	applog "designflow/internal/log"
)

// DefaultName is the shared in-memory database used by the server in mock mode.
const DefaultName = "designflow-mock"

// New returns the shared in-memory sqlite database with the schema migrated.
func New(ctx context.Context) (*gorm.DB, error) {
	return Open(ctx, DefaultName)
}

// Open returns a migrated in-memory sqlite database. Handles opened with the
// same name share their data for the lifetime of the process.
func Open(ctx context.Context, name string) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database", "name", name)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	if err != nil {
		return nil, fmt.Errorf("open mock database: %w", err)
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, fmt.Errorf("migrate mock database: %w", err)
	}

	applog.Debug(ctx, "mock database ready", "name", name)
	return database, nil
}
