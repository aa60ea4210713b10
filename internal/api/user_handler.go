package api

import (
	"log/slog"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/platform/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userStore store.UserStore, log *slog.Logger) *UserHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userStore: userStore,
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// Me handles GET /users/me requests. It returns the identity the access
// guard bound to the request; no further store lookup is needed.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	if !ok || user == nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User not found in request context")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ListUsers handles GET /admin/users requests. The route is gated to the
// admin role by middleware; this handler only shapes the response.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, userToResponse(user))
	}

	log.Debug("listed users", slog.Int("count", len(resp.Users)))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
