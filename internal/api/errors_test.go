package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/service/auth"
	"github.com/taskdeck/taskdeck/internal/service/tasks"
	"github.com/taskdeck/taskdeck/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid sort field", tasks.ErrInvalidSortField, http.StatusBadRequest},
		{"invalid limit", tasks.ErrInvalidLimit, http.StatusBadRequest},
		{"empty update", tasks.ErrEmptyUpdate, http.StatusBadRequest},
		{"title too short", domain.ErrTitleTooShort, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"wrapped task not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"unknown error", errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("auth failures share one message", func(t *testing.T) {
		t.Parallel()
		invalid := GetSafeErrorMessage(auth.ErrInvalidToken)
		expired := GetSafeErrorMessage(auth.ErrExpiredToken)

		assert.Equal(t, invalid, expired)
		assert.Equal(t, "Invalid token. Please log in again.", invalid)
	})

	t.Run("known errors map to fixed messages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "No task found with that ID", GetSafeErrorMessage(store.ErrTaskNotFound))
		assert.Equal(t, "Email already in use", GetSafeErrorMessage(store.ErrEmailExists))
	})

	t.Run("unknown errors never leak their text", func(t *testing.T) {
		t.Parallel()

		err := errors.New("pq: connection to postgres://user:pass@db failed")
		msg := GetSafeErrorMessage(err)

		assert.Equal(t, "An unexpected error occurred", msg)
		assert.NotContains(t, msg, "postgres")
	})

	t.Run("validation sentinels surface their static text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, domain.ErrTitleTooShort.Error(), GetSafeErrorMessage(domain.ErrTitleTooShort))
		assert.Equal(t, tasks.ErrInvalidLimit.Error(), GetSafeErrorMessage(tasks.ErrInvalidLimit))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag")
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	err = errors.New("some unrelated failure")
	assert.Equal(t, "Validation error", SanitizeValidationError(err))
}
