package store

import (
	"context"
)

type unavailableStorage struct{}

// NewUnavailableStorage returns a [LocalStorage] whose every operation fails
// with [ErrStorageUnavailable]. It stands in when no backing store could be
// opened so the session layer degrades to "nothing cached".
func NewUnavailableStorage() LocalStorage {
	return unavailableStorage{}
}

func (unavailableStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrStorageUnavailable
}

func (unavailableStorage) Set(context.Context, string, string) error {
	return ErrStorageUnavailable
}

func (unavailableStorage) Remove(context.Context, ...string) error {
	return ErrStorageUnavailable
}

func (unavailableStorage) Keys(context.Context) ([]string, error) {
	return nil, ErrStorageUnavailable
}
