// Package middleware provides HTTP middleware for the API, including the
// access guard that resolves bearer tokens to authenticated identities.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/internal/api/shared"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/redact"
	"github.com/taskdeck/taskdeck/internal/service/auth"
	"github.com/taskdeck/taskdeck/internal/store"
)

// tokenCookieName is the fallback cookie checked when no Authorization
// header is present.
const tokenCookieName = "jwt"

// External authentication messages. Invalid signature, expired token, and a
// vanished user all collapse into msgInvalidToken so that a caller cannot
// probe which case occurred; the internal cause is logged only.
const (
	msgNotLoggedIn  = "You are not logged in. Please log in to get access."
	msgInvalidToken = "Invalid token. Please log in again."
	msgForbidden    = "You do not have permission to perform this action"
)

// AuthMiddleware is the access guard: it resolves a request's bearer token
// to a live, authenticated user before any protected handler runs.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates bearer tokens and binds the resolved user to the
// request context. Resolution order: Authorization header, then the jwt
// cookie. A request with no credential at all gets a distinct message;
// every other failure is externally uniform.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgNotLoggedIn)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				// Logged distinctly; surfaced identically to invalid.
				slog.Debug("authentication failed: token expired",
					"trace_id", shared.GetTraceID(r.Context()))
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				slog.Debug("authentication failed: invalid token",
					"trace_id", shared.GetTraceID(r.Context()))
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		// The subject must still exist; a deleted account invalidates all
		// of its outstanding tokens.
		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				slog.Debug("authentication failed: user no longer exists",
					"user_id", claims.UserID,
					"trace_id", shared.GetTraceID(r.Context()))
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
				return
			}
			slog.Error("failed to resolve token subject", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, user.ID)
		ctx = context.WithValue(ctx, shared.CurrentUserContextKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole returns middleware that rejects requests whose authenticated
// identity does not hold one of the allowed roles. It must run after
// Authenticate; a request with no bound identity is rejected outright.
func RequireRole(allowedRoles ...domain.Role) func(http.Handler) http.Handler {
	allowed := roleSet(allowedRoles)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r)
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgNotLoggedIn)
				return
			}

			if !allowed(user.Role) {
				slog.Debug("role gate rejected request",
					"user_id", user.ID,
					"role", user.Role,
					"path", r.URL.Path)
				shared.RespondWithError(w, r, http.StatusForbidden, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// roleSet builds a membership predicate over the allowed roles.
func roleSet(roles []domain.Role) func(domain.Role) bool {
	set := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return func(r domain.Role) bool {
		_, ok := set[r]
		return ok
	}
}

// extractToken pulls the candidate bearer token from the Authorization
// header, falling back to the jwt cookie.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// CurrentUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if one was bound.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
