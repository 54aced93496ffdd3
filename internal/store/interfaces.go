package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is a synchronous key→string map that outlives the process,
// the client-side counterpart of browser localStorage.
//
// Get reports whether key exists. Remove accepts several keys and ignores
// those that are absent. Implementations that cannot reach their backing
// store return errors wrapping [ErrStorageUnavailable].
type LocalStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Keys(ctx context.Context) ([]string, error)
}
