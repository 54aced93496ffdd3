package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/logger"
)

type sqliteLocalStorage struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteLocalStorage returns a [LocalStorage] persisted in the
// local_storage table of db.
func NewSQLiteLocalStorage(db *DB, logger *logger.Logger) LocalStorage {
	return &sqliteLocalStorage{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteLocalStorage) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("failed to build get query: %w", err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.Get").
			Str("key", key).
			Msg("failed to read local storage value")
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, true, nil
}

func (s *sqliteLocalStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.Set").
			Str("key", key).
			Msg("failed to write local storage value")
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for key %q: %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("key %q: %w", key, ErrValueNotSaved)
	}

	return nil
}

func (s *sqliteLocalStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValuesQuery(keys...)
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteLocalStorage.Remove").
			Strs("keys", keys).
			Msg("failed to delete local storage values")
		return fmt.Errorf("failed to delete keys %v: %w", keys, err)
	}

	return nil
}

func (s *sqliteLocalStorage) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build keys query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteLocalStorage.Keys").Msg("failed to list local storage keys")
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}

	return keys, nil
}
