package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewParsingError("bad row", fmt.Errorf("unexpected field count")),
			want: "[PARSING] bad row: unexpected field count",
		},
		{
			name: "without cause",
			err:  NewValidationError("empty table"),
			want: "[VALIDATION] empty table",
		},
		{
			name: "not found formats resource",
			err:  NewNotFoundError("column Corporate_Partners"),
			want: "[NOT_FOUND] column Corporate_Partners not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("write failed", cause)

	assert.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppErrorWithContext(t *testing.T) {
	err := NewConfigError("invalid setting", nil).
		WithContext("key", "chart_dpi").
		WithContext("value", 0)

	assert.Equal(t, "chart_dpi", err.Context["key"])
	assert.Equal(t, 0, err.Context["value"])
}
