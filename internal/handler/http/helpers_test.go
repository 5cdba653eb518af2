package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/mock"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/utils"
	"github.com/MKhiriev/go-vault-tasks/models"
	"go.uber.org/mock/gomock"
)

const testHashKey = "integrity-key"

type testMocks struct {
	auth    *mock.MockAuthService
	tasks   *mock.MockVaultTaskService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		tasks:   mock.NewMockVaultTaskService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:      m.auth,
		VaultTaskService: m.tasks,
		AppInfoService:   m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// withNopLogger puts a nop logger into the request context.
func withNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func withToken(r *http.Request, userID string, capabilities ...string) *http.Request {
	token := models.Token{UserID: userID, Capabilities: capabilities}
	return r.WithContext(utils.WithToken(r.Context(), token))
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}
