package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name            string `json:"name"             validate:"required,min=2,max=50"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the outward shape of a user. It never carries the
// password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// Token is the JWT bearer token used for API authorization
	Token string `json:"token"`

	// User is the registered or authenticated user, without credentials
	User UserResponse `json:"user"`
}

// UserListResponse defines the response of the administrative user listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// CreateTaskRequest defines the payload for task creation. There is no
// owner field; ownership always comes from the authenticated identity, and
// any stray owner value in the body is dropped during decoding.
type CreateTaskRequest struct {
	Title       string     `json:"title"                 validate:"required,min=2,max=100"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      string     `json:"status,omitempty"      validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest defines the payload for partial task updates.
// Absent fields are left unchanged; at least one field must be present.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"       validate:"omitempty,min=2,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      *string    `json:"status,omitempty"      validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string    `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TaskResponse is the outward shape of a task.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskListResponse defines the paginated response of the task listing.
type TaskListResponse struct {
	Items       []TaskResponse `json:"items"`
	Total       int64          `json:"total"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
}

// userToResponse converts a domain user to its response shape.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// taskToResponse converts a domain task to its response shape.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
