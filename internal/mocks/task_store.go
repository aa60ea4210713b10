// Package mocks provides hand-written mock implementations of the store
// interfaces for use in tests.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetForUserFn    func(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)
	ListFn          func(ctx context.Context, q store.TaskQuery, sort store.TaskSort, limit, offset int) ([]*domain.Task, error)
	CountFn         func(ctx context.Context, q store.TaskQuery) (int64, error)
	UpdateForUserFn func(ctx context.Context, task *domain.Task) error
	DeleteForUserFn func(ctx context.Context, taskID, ownerID uuid.UUID) error

	// Default return values
	Task         *domain.Task
	Tasks        []*domain.Task
	Total        int64
	DefaultError error
}

// Compile-time check
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the store.TaskStore Create method
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.DefaultError
}

// GetForUser implements the store.TaskStore GetForUser method
func (m *MockTaskStore) GetForUser(
	ctx context.Context,
	taskID, ownerID uuid.UUID,
) (*domain.Task, error) {
	if m.GetForUserFn != nil {
		return m.GetForUserFn(ctx, taskID, ownerID)
	}
	return m.Task, m.DefaultError
}

// List implements the store.TaskStore List method
func (m *MockTaskStore) List(
	ctx context.Context,
	q store.TaskQuery,
	sort store.TaskSort,
	limit, offset int,
) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q, sort, limit, offset)
	}
	return m.Tasks, m.DefaultError
}

// Count implements the store.TaskStore Count method
func (m *MockTaskStore) Count(ctx context.Context, q store.TaskQuery) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, q)
	}
	return m.Total, m.DefaultError
}

// UpdateForUser implements the store.TaskStore UpdateForUser method
func (m *MockTaskStore) UpdateForUser(ctx context.Context, task *domain.Task) error {
	if m.UpdateForUserFn != nil {
		return m.UpdateForUserFn(ctx, task)
	}
	return m.DefaultError
}

// DeleteForUser implements the store.TaskStore DeleteForUser method
func (m *MockTaskStore) DeleteForUser(ctx context.Context, taskID, ownerID uuid.UUID) error {
	if m.DeleteForUserFn != nil {
		return m.DeleteForUserFn(ctx, taskID, ownerID)
	}
	return m.DefaultError
}
