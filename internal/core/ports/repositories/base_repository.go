package repositories

import "context"

// Storage is the lifecycle of a storage backend.
type Storage interface {
	// Init creates the schema if it is absent. It is safe to call more than once.
	Init(ctx context.Context) error

	// Close releases the backend's connections.
	Close() error
}
