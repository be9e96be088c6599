package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mhollis/fable-engine/pkg/session"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	sessions  map[uuid.UUID]*session.Snapshot
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		sessions: make(map[uuid.UUID]*session.Snapshot),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.saveError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveSession mocks saving a session snapshot
func (m *MockStorage) SaveSession(ctx context.Context, id uuid.UUID, snap *session.Snapshot) error {
	if m.saveError != nil {
		return m.saveError
	}
	if snap == nil {
		return errors.New("snapshot cannot be nil")
	}
	m.sessions[id] = snap
	return nil
}

// LoadSession mocks loading a session snapshot
func (m *MockStorage) LoadSession(ctx context.Context, id uuid.UUID) (*session.Snapshot, error) {
	snap, exists := m.sessions[id]
	if !exists {
		return nil, nil // Return nil for not found
	}
	return snap, nil
}

// DeleteSession mocks deleting a session
func (m *MockStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}
