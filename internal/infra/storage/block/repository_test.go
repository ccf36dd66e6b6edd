package block

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

// isConflictError решает, станет ли ошибка вставки ErrSlotConflict или
// уйдет наверх как ErrExecQuery. От этого зависит, получит ли клиент 409
// при гонке двух вставок на одно окно.
func TestIsConflictError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{
			name:     "exclusion violation",
			err:      &pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			conflict: true,
		},
		{
			name:     "unique violation",
			err:      &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"},
			conflict: true,
		},
		{
			name:     "wrapped exclusion violation",
			err:      fmt.Errorf("driver: %w", &pq.Error{Code: "23P01"}),
			conflict: true,
		},
		{
			name:     "foreign key violation is not a conflict",
			err:      &pq.Error{Code: "23503", Message: "violates foreign key constraint"},
			conflict: false,
		},
		{
			name:     "serialization failure is not a conflict",
			err:      &pq.Error{Code: "40001", Message: "could not serialize access"},
			conflict: false,
		},
		{
			name:     "non-postgres error",
			err:      errors.New("connection refused"),
			conflict: false,
		},
		{
			name:     "nil error",
			err:      nil,
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, isConflictError(tt.err))
		})
	}
}
