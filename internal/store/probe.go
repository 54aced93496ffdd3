package store

import (
	"context"
)

// probeKey is written and removed to detect a usable storage.
const probeKey = "__localStorage_test__"

// Available reports whether s accepts a write followed by a remove.
func Available(ctx context.Context, s LocalStorage) bool {
	if s == nil {
		return false
	}
	if err := s.Set(ctx, probeKey, probeKey); err != nil {
		return false
	}
	return s.Remove(ctx, probeKey) == nil
}
