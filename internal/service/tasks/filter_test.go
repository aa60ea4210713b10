package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/store"
)

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		want    store.TaskSort
		wantErr error
	}{
		{
			name: "empty expression yields default ordering",
			expr: "",
			want: store.TaskSort{Column: store.TaskColumnCreatedAt, Descending: true},
		},
		{
			name: "camelCase field",
			expr: "dueDate",
			want: store.TaskSort{Column: store.TaskColumnDueDate},
		},
		{
			name: "snake_case field",
			expr: "due_date",
			want: store.TaskSort{Column: store.TaskColumnDueDate},
		},
		{
			name: "descending prefix",
			expr: "-priority",
			want: store.TaskSort{Column: store.TaskColumnPriority, Descending: true},
		},
		{
			name: "title ascending",
			expr: "title",
			want: store.TaskSort{Column: store.TaskColumnTitle},
		},
		{
			name:    "unknown field",
			expr:    "password",
			wantErr: ErrInvalidSortField,
		},
		{
			name:    "bare dash",
			expr:    "-",
			wantErr: ErrInvalidSortField,
		},
		{
			name:    "double dash",
			expr:    "--created_at",
			wantErr: ErrInvalidSortField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseSort(tt.expr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateParamsIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, UpdateParams{}.IsEmpty())

	title := "New title"
	assert.False(t, UpdateParams{Title: &title}.IsEmpty())

	status := statusPtr("done")
	assert.False(t, UpdateParams{Status: status}.IsEmpty())
}
