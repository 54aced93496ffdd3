package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
)

// MemoryDSN selects [NewMemoryStorage] instead of SQLite.
const MemoryDSN = "memory"

// NewClientStorage initialises the local session store described by cfg:
//  1. "memory" (or ":memory:") returns a process-local map;
//  2. otherwise the SQLite file is opened, created if missing, and migrated.
//
// The returned close function releases the database handle.
func NewClientStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (LocalStorage, func() error, error) {
	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating local storage...")

	if cfg.DB.DSN == MemoryDSN || cfg.DB.DSN == ":memory:" {
		return NewMemoryStorage(), func() error { return nil }, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: sqlite connection error: %w", ErrStorageUnavailable, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return NewSQLiteLocalStorage(db, log), db.Close, nil
}

// OpenClientStorage is NewClientStorage that never fails: when the store
// cannot be opened the error is logged and an unavailable storage returned.
func OpenClientStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (LocalStorage, func() error) {
	s, closeFn, err := NewClientStorage(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("local storage unavailable, session will not be cached")
		return NewUnavailableStorage(), func() error { return nil }
	}
	return s, closeFn
}
