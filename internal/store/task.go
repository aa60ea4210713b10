package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Sortable task columns. Sort input is resolved against this fixed set
// before it reaches a store; raw request data never names a column.
const (
	TaskColumnCreatedAt = "created_at"
	TaskColumnUpdatedAt = "updated_at"
	TaskColumnDueDate   = "due_date"
	TaskColumnPriority  = "priority"
	TaskColumnStatus    = "status"
	TaskColumnTitle     = "title"
)

// IsSortableTaskColumn reports whether col is one of the task columns
// that may appear in an ORDER BY clause.
func IsSortableTaskColumn(col string) bool {
	switch col {
	case TaskColumnCreatedAt, TaskColumnUpdatedAt, TaskColumnDueDate,
		TaskColumnPriority, TaskColumnStatus, TaskColumnTitle:
		return true
	}
	return false
}

// TaskQuery describes an owner-scoped task selection. The owner predicate
// is always present; status and priority narrow the selection when set.
// Nothing in a TaskQuery can widen the scope beyond the owner.
type TaskQuery struct {
	OwnerID  uuid.UUID
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
}

// TaskSort describes the ordering of a task listing. Column must be one of
// the sortable task columns. Implementations break ties on the sort key by
// id so that the overall ordering is total.
type TaskSort struct {
	Column     string
	Descending bool
}

// TaskStore defines the interface for task data persistence.
// Every read and mutation is scoped to (task id, owner); a task is
// invisible to any identity other than its owner.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetForUser retrieves the task matching (id, ownerID).
	// Returns ErrTaskNotFound if no such task exists, including when the
	// task exists but belongs to a different user.
	GetForUser(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// List returns the tasks matching the query, ordered by sort with an
	// id tiebreak, starting at offset and returning at most limit rows.
	List(ctx context.Context, q TaskQuery, sort TaskSort, limit, offset int) ([]*domain.Task, error)

	// Count returns the number of tasks matching the query, ignoring
	// any pagination.
	Count(ctx context.Context, q TaskQuery) (int64, error)

	// UpdateForUser persists changes to the task matching
	// (task.ID, task.UserID). The owner column is never updated.
	// Returns ErrTaskNotFound if no such task exists.
	UpdateForUser(ctx context.Context, task *domain.Task) error

	// DeleteForUser removes the task matching (id, ownerID). The delete is
	// permanent. Returns ErrTaskNotFound if no such task exists.
	DeleteForUser(ctx context.Context, id, ownerID uuid.UUID) error
}
