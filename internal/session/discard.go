package session

import "context"

// discardStorage replaces a storage that failed the availability probe.
type discardStorage struct{}

func (discardStorage) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (discardStorage) Set(context.Context, string, string) error         { return nil }
func (discardStorage) Remove(context.Context, ...string) error           { return nil }
func (discardStorage) Keys(context.Context) ([]string, error)            { return nil, nil }
