package service

import (
	"context"

	"github.com/MKhiriev/go-vault-tasks/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientVaultTaskService is the terminal client's view of a single user's
// vault tasks. The user is fixed when the service is built.
type ClientVaultTaskService interface {
	// UserID returns the user the service works for.
	UserID() string

	// List fetches the user's tasks from the server.
	List(ctx context.Context, filter models.TaskFilter) ([]models.VaultTask, error)

	// Create asks the server to create a pending task of taskType, optionally
	// bound to cipherID.
	Create(ctx context.Context, taskType models.TaskType, cipherID string) (bool, error)

	// SetStatus moves task to status, based on the version the client
	// last saw.
	SetStatus(ctx context.Context, task models.VaultTask, status models.TaskStatus) (bool, error)

	// Send pushes an arbitrary batch of changes in one request.
	Send(ctx context.Context, changes []models.VaultTaskChange) (bool, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
