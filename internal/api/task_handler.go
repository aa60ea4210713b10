package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/api/middleware"
	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/service/tasks"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService tasks.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService tasks.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests. The query string is parsed into a
// typed filter exactly once here; the service never sees raw request data.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	params, ok := parseListParams(w, r)
	if !ok {
		return
	}

	page, err := h.taskService.List(r.Context(), ownerID, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	items := make([]TaskResponse, 0, len(page.Items))
	for _, task := range page.Items {
		items = append(items, taskToResponse(task))
	}

	log.Debug("listed tasks",
		slog.String("owner_id", ownerID.String()),
		slog.Int("count", len(items)))

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Items:       items,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	})
}

// CreateTask handles POST /tasks requests. Ownership is injected from the
// authenticated identity; the payload cannot name an owner.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.Create(r.Context(), ownerID, tasks.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), taskID, ownerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PATCH /tasks/{id} requests.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	patch := tasks.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	task, err := h.taskService.Update(r.Context(), taskID, ownerID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID, ownerID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestUserID extracts the authenticated user's ID from the request
// context, responding with 401 when it is absent.
func requestUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}

// parseTaskID reads the task ID from the URL. A malformed ID responds like
// a missing task so that probing with junk IDs reveals nothing.
func parseTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "No task found with that ID")
		return uuid.Nil, false
	}
	return taskID, true
}

// parseListParams builds the typed list filter from the query string.
// Enum filters are rejected here, not silently dropped.
func parseListParams(w http.ResponseWriter, r *http.Request) (tasks.ListParams, bool) {
	q := r.URL.Query()
	params := tasks.ListParams{Sort: q.Get("sort")}

	if v := q.Get("status"); v != "" {
		status := domain.TaskStatus(v)
		if !status.IsValid() {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid status filter")
			return params, false
		}
		params.Status = &status
	}

	if v := q.Get("priority"); v != "" {
		priority := domain.TaskPriority(v)
		if !priority.IsValid() {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid priority filter")
			return params, false
		}
		params.Priority = &priority
	}

	// Zero means "absent" further down, so an explicit 0 (or a negative
	// value) must be rejected here rather than silently defaulted.
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit")
			return params, false
		}
		params.Limit = limit
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page")
			return params, false
		}
		params.Page = page
	}

	return params, true
}
