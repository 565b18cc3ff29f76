// Package store owns the two persisted collections, the flight schedule
// and the reservation list, over a pluggable key-value backend.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is the minimal key-value contract the store needs: whole-value
// reads and whole-value rewrites, nothing incremental.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
