package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/app"
	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// requestWithUser builds a request whose chi route context carries {id}.
func requestWithUser(method, target, userID, body string) *http.Request {
	req := withNopLogger(httptest.NewRequest(method, target, strings.NewReader(body)))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(userIDParam, userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetVaultTasks(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})

	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	tasks := []models.VaultTask{
		{ID: "t1", UserID: "user-1", Type: models.EnableTwoFactor, Status: models.Pending, Version: 1, CreatedAt: created, UpdatedAt: created},
	}
	m.tasks.EXPECT().GetVaultTasks(gomock.Any(), "user-1", models.TaskFilter{}).Return(tasks, nil)

	rec := httptest.NewRecorder()
	h.getVaultTasks(rec, requestWithUser(http.MethodGet, "/vault-tasks/user/user-1", "user-1", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.VaultTasksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 1, got.Length)
	assert.Equal(t, tasks, got.Tasks)
}

func TestGetVaultTasks_EmptyUser(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})

	m.tasks.EXPECT().GetVaultTasks(gomock.Any(), "nobody", models.TaskFilter{}).Return([]models.VaultTask{}, nil)

	rec := httptest.NewRecorder()
	h.getVaultTasks(rec, requestWithUser(http.MethodGet, "/vault-tasks/user/nobody", "nobody", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":"nobody","tasks":[],"length":0}`, rec.Body.String())
}

func TestGetVaultTasks_StatusFilter(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})

	m.tasks.EXPECT().GetVaultTasks(gomock.Any(), "user-1", models.TaskFilter{Status: models.Completed}).
		Return([]models.VaultTask{}, nil)
	rec := httptest.NewRecorder()
	h.getVaultTasks(rec, requestWithUser(http.MethodGet, "/vault-tasks/user/user-1?status=completed", "user-1", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	m.tasks.EXPECT().GetVaultTasks(gomock.Any(), "user-1", models.TaskFilter{Status: "archived"}).
		Return(nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrValidationInvalidStatus))
	rec = httptest.NewRecorder()
	h.getVaultTasks(rec, requestWithUser(http.MethodGet, "/vault-tasks/user/user-1?status=archived", "user-1", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidStatus, strings.TrimSpace(rec.Body.String()))
}

func TestGetVaultTasks_StorageFailure(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})

	m.tasks.EXPECT().GetVaultTasks(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, fmt.Errorf("%w: pq: relation does not exist", store.ErrExecutingQuery))

	rec := httptest.NewRecorder()
	h.getVaultTasks(rec, requestWithUser(http.MethodGet, "/vault-tasks/user/user-1", "user-1", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, strings.TrimSpace(rec.Body.String()))
}

func TestUpdateVaultTasks(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m testMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "changed",
			body: `{"tasks":[{"id":"t1","status":"completed","version":1}]}`,
			setup: func(m testMocks) {
				m.tasks.EXPECT().UpdateVaultTasks(gomock.Any(), "user-1", models.VaultTasksRequest{
					Tasks: []models.VaultTaskChange{{ID: "t1", Status: models.Completed, Version: 1}},
				}).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "true",
		},
		{
			name: "no-op",
			body: `{"tasks":[{"id":"t1","status":"pending","version":1}]}`,
			setup: func(m testMocks) {
				m.tasks.EXPECT().UpdateVaultTasks(gomock.Any(), "user-1", gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "false",
		},
		{
			name:       "malformed json",
			body:       `{"tasks":[{"id":`,
			setup:      func(m testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "unknown field",
			body:       `{"tasks":[],"owner":"someone"}`,
			setup:      func(m testMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "body over the size limit",
			body:       `{"tasks":[],"hash":"` + strings.Repeat("a", maxRequestBodySize) + `"}`,
			setup:      func(m testMocks) {},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   app.MsgRequestBodyTooLarge,
		},
		{
			name: "empty change list",
			body: `{"tasks":[]}`,
			setup: func(m testMocks) {
				m.tasks.EXPECT().UpdateVaultTasks(gomock.Any(), "user-1", gomock.Any()).
					Return(false, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrValidationNoTasks))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgNoTasksProvided,
		},
		{
			name: "stale version",
			body: `{"tasks":[{"id":"t1","status":"completed","version":1}]}`,
			setup: func(m testMocks) {
				m.tasks.EXPECT().UpdateVaultTasks(gomock.Any(), "user-1", gomock.Any()).
					Return(false, fmt.Errorf("update vault tasks: %w", store.ErrVersionConflict))
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgVersionConflict,
		},
		{
			name: "unknown task",
			body: `{"tasks":[{"id":"missing","status":"completed","version":1}]}`,
			setup: func(m testMocks) {
				m.tasks.EXPECT().UpdateVaultTasks(gomock.Any(), "user-1", gomock.Any()).
					Return(false, store.ErrVaultTaskNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, config.StructuredConfig{})
			tt.setup(m)

			rec := httptest.NewRecorder()
			h.updateVaultTasks(rec, requestWithUser(http.MethodPost, "/vault-tasks/user/user-1", "user-1", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}
