package database

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	_ "github.com/lib/pq"
	"github.com/sitetrack/backend/internal/config"
	"go.uber.org/zap"
)

// InitDB opens the connection pool and verifies it with a ping.
// The caller owns the returned pool and must Close it on shutdown.
func InitDB(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "error opening database")
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if cerr := db.Close(); cerr != nil {
			log.Warn("Failed to close database after ping failure", zap.Error(cerr))
		}
		return nil, errors.Wrap(err, "error connecting to database")
	}

	log.Info("Database connection established",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int("max_open_conns", cfg.MaxOpenConns))
	return db, nil
}

// CloseDB drains the pool, logging instead of failing shutdown
func CloseDB(db *sql.DB, log *zap.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Warn("Failed to close database connection", zap.Error(err))
	}
}
