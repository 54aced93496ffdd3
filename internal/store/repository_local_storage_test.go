package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-attendance/internal/logger"
)

func newTestLocalStorage(t *testing.T) (LocalStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSQLiteLocalStorage(&DB{DB: db, logger: l}, l), mock
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestSQLiteGet_Found(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectQuery(`SELECT value FROM local_storage WHERE key = \?`).
		WithArgs("employeeCode").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("+wknX9EBOvLZISXJwbjCdw=="))

	v, ok, err := s.Get(context.Background(), "employeeCode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "+wknX9EBOvLZISXJwbjCdw==", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteGet_Missing(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectQuery(`SELECT value FROM local_storage`).
		WithArgs("authToken").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, ok, err := s.Get(context.Background(), "authToken")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLiteGet_DBError(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectQuery(`SELECT value FROM local_storage`).
		WithArgs("authToken").
		WillReturnError(errors.New("database is locked"))

	_, ok, err := s.Get(context.Background(), "authToken")
	assert.Error(t, err)
	assert.False(t, ok)
}

// ── Set ───────────────────────────────────────────────────────────────────────

func TestSQLiteSet_Upserts(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectExec(`INSERT INTO local_storage \(key,value,updated_at\) VALUES \(\?,\?,CURRENT_TIMESTAMP\) ON CONFLICT\(key\) DO UPDATE`).
		WithArgs("attendanceMarked", "true").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "attendanceMarked", "true"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSet_NoRowsAffected(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectExec(`INSERT INTO local_storage`).
		WithArgs("duration", "x").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Set(context.Background(), "duration", "x")
	assert.ErrorIs(t, err, ErrValueNotSaved)
}

func TestSQLiteSet_DBError(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectExec(`INSERT INTO local_storage`).
		WithArgs("duration", "x").
		WillReturnError(sql.ErrConnDone)

	err := s.Set(context.Background(), "duration", "x")
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

// ── Remove ────────────────────────────────────────────────────────────────────

func TestSQLiteRemove_MultipleKeys(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectExec(`DELETE FROM local_storage WHERE key IN \(\?,\?\)`).
		WithArgs("attendanceMarked", "lastAttendanceDate").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, s.Remove(context.Background(), "attendanceMarked", "lastAttendanceDate"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRemove_NoKeysIsNoOp(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	require.NoError(t, s.Remove(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Keys ──────────────────────────────────────────────────────────────────────

func TestSQLiteKeys(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectQuery(`SELECT key FROM local_storage ORDER BY key`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow("auth_refresh").AddRow("employeeCode"))

	keys, err := s.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"auth_refresh", "employeeCode"}, keys)
}

func TestSQLiteKeys_ScanError(t *testing.T) {
	s, mock := newTestLocalStorage(t)

	mock.ExpectQuery(`SELECT key FROM local_storage`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).AddRow(nil))

	_, err := s.Keys(context.Background())
	assert.Error(t, err)
}
