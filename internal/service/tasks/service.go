// Package tasks implements the task query engine: owner-scoped listing with
// deterministic filter/sort/pagination, and owner-scoped CRUD.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// TaskPage is one page of an owner's task listing plus its pagination
// metadata. Total counts every match regardless of the page window.
type TaskPage struct {
	Items       []*domain.Task
	Total       int64
	TotalPages  int
	CurrentPage int
}

// TaskService exposes task operations scoped to a single owner. The ownerID
// argument of every method is the authenticated identity resolved by the
// access guard; it is the only legitimate source of task ownership.
type TaskService interface {
	// List returns one page of the owner's tasks matching the filter.
	List(ctx context.Context, ownerID uuid.UUID, params ListParams) (*TaskPage, error)

	// Get returns the owner's task with the given ID, or
	// store.ErrTaskNotFound if no such task exists for this owner.
	Get(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error)

	// Create creates a task owned by ownerID, applying enum defaults for
	// omitted status and priority.
	Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*domain.Task, error)

	// Update applies a partial patch to the owner's task and returns the
	// updated task, or store.ErrTaskNotFound if no such task exists for
	// this owner. Empty patches fail with ErrEmptyUpdate.
	Update(ctx context.Context, taskID, ownerID uuid.UUID, patch UpdateParams) (*domain.Task, error)

	// Delete permanently removes the owner's task, or returns
	// store.ErrTaskNotFound if no such task exists for this owner.
	Delete(ctx context.Context, taskID, ownerID uuid.UUID) error
}

// taskService is the store-backed implementation of TaskService.
type taskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

var _ TaskService = (*taskService)(nil)

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &taskService{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_service")),
	}, nil
}

// List implements TaskService.List.
func (s *taskService) List(
	ctx context.Context,
	ownerID uuid.UUID,
	params ListParams,
) (*TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	limit := params.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return nil, ErrInvalidLimit
	}

	page := params.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, ErrInvalidPage
	}

	if params.Status != nil && !params.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if params.Priority != nil && !params.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	sort, err := parseSort(params.Sort)
	if err != nil {
		return nil, err
	}

	// The owner predicate is fixed here; nothing downstream can widen it.
	query := store.TaskQuery{
		OwnerID:  ownerID,
		Status:   params.Status,
		Priority: params.Priority,
	}

	offset := (page - 1) * limit

	items, err := s.taskStore.List(ctx, query, sort, limit, offset)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	total, err := s.taskStore.Count(ctx, query)
	if err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	log.Debug("listed tasks",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(items)),
		slog.Int64("total", total),
		slog.Int("page", page))

	return &TaskPage{
		Items:       items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Get implements TaskService.Get.
func (s *taskService) Get(ctx context.Context, taskID, ownerID uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetForUser(ctx, taskID, ownerID)
}

// Create implements TaskService.Create.
func (s *taskService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	params CreateParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(
		ownerID,
		params.Title,
		params.Description,
		params.Status,
		params.Priority,
		params.DueDate,
	)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskService) Update(
	ctx context.Context,
	taskID, ownerID uuid.UUID,
	patch UpdateParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	task, err := s.taskStore.GetForUser(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.UpdateForUser(ctx, task); err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	log.Info("task updated",
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()))
	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskService) Delete(ctx context.Context, taskID, ownerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.DeleteForUser(ctx, taskID, ownerID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()),
			slog.String("owner_id", ownerID.String()))
		return err
	}

	log.Info("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}
