package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// mockDBTX is a minimal store.DBTX stand-in for tests that never reach the
// database.
type mockDBTX struct{}

func (m *mockDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, sql.ErrConnDone
}

func (m *mockDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, sql.ErrConnDone
}

func (m *mockDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, sql.ErrConnDone
}

func (m *mockDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestNewPostgresTaskStore(t *testing.T) {
	t.Parallel()

	t.Run("valid db", func(t *testing.T) {
		t.Parallel()
		s := NewPostgresTaskStore(&mockDBTX{}, nil)
		assert.NotNil(t, s)
	})

	t.Run("nil db panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			NewPostgresTaskStore(nil, nil)
		})
	})
}

func TestListRejectsUnknownSortColumn(t *testing.T) {
	t.Parallel()

	s := NewPostgresTaskStore(&mockDBTX{}, nil)

	// A column outside the allow-list must be rejected before any SQL is
	// rendered.
	_, err := s.List(context.Background(),
		store.TaskQuery{OwnerID: uuid.New()},
		store.TaskSort{Column: "hashed_password; DROP TABLE users"},
		10, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestBuildTaskPredicate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	status := domain.TaskStatusTodo
	priority := domain.TaskPriorityHigh

	tests := []struct {
		name      string
		query     store.TaskQuery
		wantWhere string
		wantArgs  int
	}{
		{
			name:      "owner only",
			query:     store.TaskQuery{OwnerID: ownerID},
			wantWhere: "user_id = $1",
			wantArgs:  1,
		},
		{
			name:      "owner and status",
			query:     store.TaskQuery{OwnerID: ownerID, Status: &status},
			wantWhere: "user_id = $1 AND status = $2",
			wantArgs:  2,
		},
		{
			name:      "owner and priority",
			query:     store.TaskQuery{OwnerID: ownerID, Priority: &priority},
			wantWhere: "user_id = $1 AND priority = $2",
			wantArgs:  2,
		},
		{
			name:      "owner, status and priority",
			query:     store.TaskQuery{OwnerID: ownerID, Status: &status, Priority: &priority},
			wantWhere: "user_id = $1 AND status = $2 AND priority = $3",
			wantArgs:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			where, args := buildTaskPredicate(tt.query)

			assert.Equal(t, tt.wantWhere, where)
			require.Len(t, args, tt.wantArgs)
			// The owner argument always leads
			assert.Equal(t, ownerID, args[0])
		})
	}
}
