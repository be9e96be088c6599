package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mhollis/fable-engine/pkg/session"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage defines the interface for session persistence. Sessions are
// stored as snapshots; callers rebuild the live session with
// session.NewFromSnapshot.
type Storage interface {
	HealthChecker
	Closer

	// SaveSession saves a session snapshot under its ID
	SaveSession(ctx context.Context, id uuid.UUID, snap *session.Snapshot) error

	// LoadSession retrieves a session snapshot by ID
	// Returns nil if the session doesn't exist
	LoadSession(ctx context.Context, id uuid.UUID) (*session.Snapshot, error)

	// DeleteSession removes a session by ID
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
