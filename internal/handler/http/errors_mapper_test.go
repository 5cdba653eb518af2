package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-vault-tasks/internal/app"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "no tasks",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrValidationNoTasks),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgNoTasksProvided,
		},
		{
			name:       "invalid status",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrValidationInvalidStatus),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidStatus,
		},
		{
			name:       "generic validation",
			err:        fmt.Errorf("%w: bad version", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidDataProvided,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("update vault tasks: %w", store.ErrVaultTaskNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    app.MsgTaskNotFound,
		},
		{
			name:       "version conflict",
			err:        fmt.Errorf("task t1 at index 0: %w", store.ErrVersionConflict),
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgVersionConflict,
		},
		{
			name:       "already exists",
			err:        store.ErrVaultTaskAlreadyExists,
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgTaskAlreadyExists,
		},
		{
			name:       "other user",
			err:        service.ErrUnauthorizedAccessToDifferentUserData,
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgAccessDenied,
		},
		{
			name:       "storage failure hides details",
			err:        fmt.Errorf("%w: connection reset", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "timeout",
			err:        fmt.Errorf("get vault tasks: %w", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "timeout inside a storage error",
			err:        fmt.Errorf("get vault tasks: %w", fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded)),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    app.MsgInternalServerError,
		},
		{
			name:       "conflict inside a storage error",
			err:        fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrVersionConflict),
			wantStatus: http.StatusConflict,
			wantMsg:    app.MsgVersionConflict,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMsg, messageFromError(tt.err))
		})
	}
}

func TestStatusFromError_StableForWrappedErrors(t *testing.T) {
	err := fmt.Errorf("get vault tasks: %w", fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded))

	for range 200 {
		require.Equal(t, http.StatusServiceUnavailable, statusFromError(err))
	}
}
