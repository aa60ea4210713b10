package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/mocks"
	"github.com/taskdeck/taskdeck/internal/store"
)

func newTestService(t *testing.T, taskStore store.TaskStore) TaskService {
	t.Helper()
	svc, err := NewTaskService(taskStore, nil)
	require.NoError(t, err)
	return svc
}

func statusPtr(s domain.TaskStatus) *domain.TaskStatus       { return &s }
func priorityPtr(p domain.TaskPriority) *domain.TaskPriority { return &p }
func strPtr(s string) *string                                { return &s }

func TestNewTaskService(t *testing.T) {
	t.Parallel()

	_, err := NewTaskService(nil, nil)
	assert.Error(t, err)

	svc, err := NewTaskService(&mocks.MockTaskStore{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("applies defaults and owner scope", func(t *testing.T) {
		t.Parallel()

		var gotQuery store.TaskQuery
		var gotSort store.TaskSort
		var gotLimit, gotOffset int

		taskStore := &mocks.MockTaskStore{
			ListFn: func(ctx context.Context, q store.TaskQuery, sort store.TaskSort, limit, offset int) ([]*domain.Task, error) {
				gotQuery, gotSort, gotLimit, gotOffset = q, sort, limit, offset
				return []*domain.Task{}, nil
			},
			CountFn: func(ctx context.Context, q store.TaskQuery) (int64, error) {
				return 0, nil
			},
		}
		svc := newTestService(t, taskStore)

		page, err := svc.List(context.Background(), ownerID, ListParams{})
		require.NoError(t, err)

		assert.Equal(t, ownerID, gotQuery.OwnerID)
		assert.Nil(t, gotQuery.Status)
		assert.Nil(t, gotQuery.Priority)
		assert.Equal(t, store.TaskSort{Column: store.TaskColumnCreatedAt, Descending: true}, gotSort)
		assert.Equal(t, DefaultLimit, gotLimit)
		assert.Equal(t, 0, gotOffset)
		assert.Equal(t, 1, page.CurrentPage)
	})

	t.Run("passes filters and computes offset", func(t *testing.T) {
		t.Parallel()

		var gotQuery store.TaskQuery
		var gotSort store.TaskSort
		var gotLimit, gotOffset int

		taskStore := &mocks.MockTaskStore{
			ListFn: func(ctx context.Context, q store.TaskQuery, sort store.TaskSort, limit, offset int) ([]*domain.Task, error) {
				gotQuery, gotSort, gotLimit, gotOffset = q, sort, limit, offset
				return []*domain.Task{}, nil
			},
			CountFn: func(ctx context.Context, q store.TaskQuery) (int64, error) {
				return 12, nil
			},
		}
		svc := newTestService(t, taskStore)

		page, err := svc.List(context.Background(), ownerID, ListParams{
			Status:   statusPtr(domain.TaskStatusTodo),
			Priority: priorityPtr(domain.TaskPriorityHigh),
			Sort:     "-dueDate",
			Limit:    5,
			Page:     3,
		})
		require.NoError(t, err)

		assert.Equal(t, ownerID, gotQuery.OwnerID)
		require.NotNil(t, gotQuery.Status)
		assert.Equal(t, domain.TaskStatusTodo, *gotQuery.Status)
		require.NotNil(t, gotQuery.Priority)
		assert.Equal(t, domain.TaskPriorityHigh, *gotQuery.Priority)
		assert.Equal(t, store.TaskSort{Column: store.TaskColumnDueDate, Descending: true}, gotSort)
		assert.Equal(t, 5, gotLimit)
		assert.Equal(t, 10, gotOffset)

		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 3, page.CurrentPage)
	})

	t.Run("pagination metadata rounds up", func(t *testing.T) {
		t.Parallel()

		taskStore := &mocks.MockTaskStore{
			Tasks: []*domain.Task{},
			CountFn: func(ctx context.Context, q store.TaskQuery) (int64, error) {
				return 21, nil
			},
		}
		svc := newTestService(t, taskStore)

		page, err := svc.List(context.Background(), ownerID, ListParams{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, &mocks.MockTaskStore{})

		tests := []struct {
			name    string
			params  ListParams
			wantErr error
		}{
			{
				name:    "limit above maximum",
				params:  ListParams{Limit: MaxLimit + 1},
				wantErr: ErrInvalidLimit,
			},
			{
				name:    "negative limit",
				params:  ListParams{Limit: -1},
				wantErr: ErrInvalidLimit,
			},
			{
				name:    "negative page",
				params:  ListParams{Page: -1},
				wantErr: ErrInvalidPage,
			},
			{
				name:    "unknown sort field",
				params:  ListParams{Sort: "owner"},
				wantErr: ErrInvalidSortField,
			},
			{
				name:    "sort by unlisted column",
				params:  ListParams{Sort: "-user_id"},
				wantErr: ErrInvalidSortField,
			},
			{
				name:    "invalid status filter",
				params:  ListParams{Status: statusPtr("archived")},
				wantErr: domain.ErrInvalidStatus,
			},
			{
				name:    "invalid priority filter",
				params:  ListParams{Priority: priorityPtr("urgent")},
				wantErr: domain.ErrInvalidPriority,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := svc.List(context.Background(), ownerID, tt.params)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("accepts the maximum limit", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		taskStore := &mocks.MockTaskStore{
			ListFn: func(ctx context.Context, q store.TaskQuery, sort store.TaskSort, limit, offset int) ([]*domain.Task, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		svc := newTestService(t, taskStore)

		_, err := svc.List(context.Background(), ownerID, ListParams{Limit: MaxLimit})
		require.NoError(t, err)
		assert.Equal(t, MaxLimit, gotLimit)
	})
}

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("creates task with defaults", func(t *testing.T) {
		t.Parallel()

		var created *domain.Task
		taskStore := &mocks.MockTaskStore{
			CreateFn: func(ctx context.Context, task *domain.Task) error {
				created = task
				return nil
			},
		}
		svc := newTestService(t, taskStore)

		task, err := svc.Create(context.Background(), ownerID, CreateParams{
			Title: "Write report",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, ownerID, task.UserID)
		assert.Equal(t, domain.TaskStatusTodo, task.Status)
		assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
		assert.Equal(t, created, task)
	})

	t.Run("rejects invalid title", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, &mocks.MockTaskStore{})

		_, err := svc.Create(context.Background(), ownerID, CreateParams{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrTitleTooShort)
	})
}

func TestTaskServiceUpdate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	newStoredTask := func() *domain.Task {
		return &domain.Task{
			ID:        uuid.New(),
			UserID:    ownerID,
			Title:     "Original title",
			Status:    domain.TaskStatusTodo,
			Priority:  domain.TaskPriorityMedium,
			CreatedAt: time.Now().UTC().Add(-time.Hour),
			UpdatedAt: time.Now().UTC().Add(-time.Hour),
		}
	}

	t.Run("applies partial patch", func(t *testing.T) {
		t.Parallel()

		stored := newStoredTask()
		var persisted *domain.Task
		taskStore := &mocks.MockTaskStore{
			GetForUserFn: func(ctx context.Context, taskID, owner uuid.UUID) (*domain.Task, error) {
				assert.Equal(t, stored.ID, taskID)
				assert.Equal(t, ownerID, owner)
				return stored, nil
			},
			UpdateForUserFn: func(ctx context.Context, task *domain.Task) error {
				persisted = task
				return nil
			},
		}
		svc := newTestService(t, taskStore)

		updated, err := svc.Update(context.Background(), stored.ID, ownerID, UpdateParams{
			Status: statusPtr(domain.TaskStatusDone),
		})
		require.NoError(t, err)
		require.NotNil(t, persisted)

		// Only the patched field changes
		assert.Equal(t, domain.TaskStatusDone, updated.Status)
		assert.Equal(t, "Original title", updated.Title)
		assert.Equal(t, domain.TaskPriorityMedium, updated.Priority)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("trims patched title", func(t *testing.T) {
		t.Parallel()

		stored := newStoredTask()
		taskStore := &mocks.MockTaskStore{
			GetForUserFn: func(ctx context.Context, taskID, owner uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
		}
		svc := newTestService(t, taskStore)

		updated, err := svc.Update(context.Background(), stored.ID, ownerID, UpdateParams{
			Title: strPtr("  New title  "),
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
	})

	t.Run("rejects empty patch", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, &mocks.MockTaskStore{})

		_, err := svc.Update(context.Background(), uuid.New(), ownerID, UpdateParams{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
	})

	t.Run("rejects patch that breaks validation", func(t *testing.T) {
		t.Parallel()

		stored := newStoredTask()
		taskStore := &mocks.MockTaskStore{
			GetForUserFn: func(ctx context.Context, taskID, owner uuid.UUID) (*domain.Task, error) {
				return stored, nil
			},
		}
		svc := newTestService(t, taskStore)

		_, err := svc.Update(context.Background(), stored.ID, ownerID, UpdateParams{
			Title: strPtr("x"),
		})
		assert.ErrorIs(t, err, domain.ErrTitleTooShort)
	})

	t.Run("missing task surfaces not found", func(t *testing.T) {
		t.Parallel()

		taskStore := &mocks.MockTaskStore{
			GetForUserFn: func(ctx context.Context, taskID, owner uuid.UUID) (*domain.Task, error) {
				return nil, store.ErrTaskNotFound
			},
		}
		svc := newTestService(t, taskStore)

		_, err := svc.Update(context.Background(), uuid.New(), ownerID, UpdateParams{
			Status: statusPtr(domain.TaskStatusDone),
		})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceGet(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	stored := &domain.Task{
		ID:       uuid.New(),
		UserID:   ownerID,
		Title:    "Write report",
		Status:   domain.TaskStatusTodo,
		Priority: domain.TaskPriorityMedium,
	}

	taskStore := &mocks.MockTaskStore{
		GetForUserFn: func(ctx context.Context, taskID, owner uuid.UUID) (*domain.Task, error) {
			if taskID == stored.ID && owner == stored.UserID {
				return stored, nil
			}
			return nil, store.ErrTaskNotFound
		},
	}
	svc := newTestService(t, taskStore)

	task, err := svc.Get(context.Background(), stored.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, stored, task)

	// Another identity cannot see the task
	_, err = svc.Get(context.Background(), stored.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskServiceDelete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	taskID := uuid.New()

	t.Run("deletes owner task", func(t *testing.T) {
		t.Parallel()

		var gotTaskID, gotOwnerID uuid.UUID
		taskStore := &mocks.MockTaskStore{
			DeleteForUserFn: func(ctx context.Context, id, owner uuid.UUID) error {
				gotTaskID, gotOwnerID = id, owner
				return nil
			},
		}
		svc := newTestService(t, taskStore)

		require.NoError(t, svc.Delete(context.Background(), taskID, ownerID))
		assert.Equal(t, taskID, gotTaskID)
		assert.Equal(t, ownerID, gotOwnerID)
	})

	t.Run("missing task surfaces not found", func(t *testing.T) {
		t.Parallel()

		taskStore := &mocks.MockTaskStore{
			DeleteForUserFn: func(ctx context.Context, id, owner uuid.UUID) error {
				return store.ErrTaskNotFound
			},
		}
		svc := newTestService(t, taskStore)

		err := svc.Delete(context.Background(), taskID, ownerID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
