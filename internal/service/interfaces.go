package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-tasks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultTaskService is the business layer behind the vault tasks endpoints.
type VaultTaskService interface {
	// GetVaultTasks returns the tasks of userID narrowed by filter. A user
	// without tasks gets an empty slice and no error.
	GetVaultTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.VaultTask, error)

	// UpdateVaultTasks applies every change of request atomically and
	// reports whether anything was created or changed.
	UpdateVaultTasks(ctx context.Context, userID string, request models.VaultTasksRequest) (bool, error)

	// PurgeCompleted removes completed tasks last updated before olderThan.
	PurgeCompleted(ctx context.Context, olderThan time.Time) (int64, error)
}

// AuthService verifies (and for tooling, issues) access tokens.
type AuthService interface {
	CreateToken(ctx context.Context, userID string, capabilities ...string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
