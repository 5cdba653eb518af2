package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-tasks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultTaskRepository persists vault tasks. Every method is scoped to a
// single user except DeleteCompletedBefore, which serves the purge worker.
type VaultTaskRepository interface {
	// GetTasks returns the user's tasks matching filter, oldest first.
	// A user without tasks gets an empty, non-nil slice.
	GetTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.VaultTask, error)

	// ApplyChanges inserts newTasks and applies status updates in a single
	// transaction. Each update must match the stored version; updates to the
	// status the task already has are skipped. Reports whether anything was
	// written.
	ApplyChanges(ctx context.Context, userID string, newTasks []models.VaultTask, updates []models.VaultTaskChange, now time.Time) (bool, error)

	// DeleteCompletedBefore removes completed tasks last updated before
	// the given time and returns how many rows were removed.
	DeleteCompletedBefore(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
