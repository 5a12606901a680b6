package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/migrations"
)

// DB wraps the sql.DB connection pool together with the statement
// builder configured for the connected backend's placeholder format.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Connect opens a database connection for the configured driver.
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3".
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx", "":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
