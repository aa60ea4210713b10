package tasks

import (
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Pagination bounds.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams is the typed filter for a task listing. It is constructed once
// at the transport boundary and passed immutably into the service; the
// service never re-parses raw request data.
type ListParams struct {
	// Status and Priority, when set, narrow the listing with exact-match
	// predicates. They are always conjoined with the owner predicate.
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority

	// Sort names a field, optionally prefixed with "-" for descending.
	// Empty means the default ordering (newest created first).
	Sort string

	// Limit is the page size in [1, MaxLimit]; zero means DefaultLimit.
	Limit int

	// Page is the 1-based page number; zero means page 1.
	Page int
}

// CreateParams carries the caller-supplied fields of a new task. The owner
// is deliberately absent: it is always injected from the authenticated
// identity, never accepted from a payload.
type CreateParams struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
}

// UpdateParams is a partial patch. Nil fields are left unchanged.
// There is no owner field; ownership is never reassigned.
type UpdateParams struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil
}

// sortFields maps accepted sort-field spellings to store columns. Both the
// wire API's camelCase names and the column names themselves are accepted.
var sortFields = map[string]string{
	"createdAt":  store.TaskColumnCreatedAt,
	"created_at": store.TaskColumnCreatedAt,
	"updatedAt":  store.TaskColumnUpdatedAt,
	"updated_at": store.TaskColumnUpdatedAt,
	"dueDate":    store.TaskColumnDueDate,
	"due_date":   store.TaskColumnDueDate,
	"priority":   store.TaskColumnPriority,
	"status":     store.TaskColumnStatus,
	"title":      store.TaskColumnTitle,
}

// parseSort resolves a sort expression ("dueDate", "-priority", ...) against
// the allow-list. An empty expression yields the default ordering, newest
// created first. Unknown fields fail with ErrInvalidSortField.
func parseSort(expr string) (store.TaskSort, error) {
	if expr == "" {
		return store.TaskSort{Column: store.TaskColumnCreatedAt, Descending: true}, nil
	}

	descending := false
	if strings.HasPrefix(expr, "-") {
		descending = true
		expr = expr[1:]
	}

	column, ok := sortFields[expr]
	if !ok {
		return store.TaskSort{}, ErrInvalidSortField
	}

	return store.TaskSort{Column: column, Descending: descending}, nil
}
