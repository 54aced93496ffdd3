package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned by every operation of a storage that
	// has no backing store, and wraps failures to open or migrate one.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrValueNotSaved is returned when an upsert affects no rows.
	ErrValueNotSaved = errors.New("local storage value was not saved")
)
