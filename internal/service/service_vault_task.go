package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// IDGenerator issues ids for newly created tasks.
type IDGenerator interface {
	Generate() string
}

type vaultTaskService struct {
	vaultTaskRepository store.VaultTaskRepository
	idGenerator         IDGenerator
	now                 func() time.Time

	logger *logger.Logger
}

func NewVaultTaskService(vaultTaskRepository store.VaultTaskRepository, idGenerator IDGenerator, logger *logger.Logger) VaultTaskService {
	return &vaultTaskService{
		vaultTaskRepository: vaultTaskRepository,
		idGenerator:         idGenerator,
		now:                 func() time.Time { return time.Now().UTC() },
		logger:              logger,
	}
}

func (s *vaultTaskService) GetVaultTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.VaultTask, error) {
	tasks, err := s.vaultTaskRepository.GetTasks(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("get vault tasks: %w", err)
	}

	if tasks == nil {
		tasks = []models.VaultTask{}
	}

	return tasks, nil
}

// UpdateVaultTasks splits the request into creations and status updates.
// Creations get a fresh id, version 1 and default to [models.Pending].
func (s *vaultTaskService) UpdateVaultTasks(ctx context.Context, userID string, request models.VaultTasksRequest) (bool, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	newTasks := make([]models.VaultTask, 0, len(request.Tasks))
	updates := make([]models.VaultTaskChange, 0, len(request.Tasks))

	for _, change := range request.Tasks {
		if !change.IsCreate() {
			updates = append(updates, change)
			continue
		}

		status := change.Status
		if status == "" {
			status = models.Pending
		}

		newTasks = append(newTasks, models.VaultTask{
			ID:        s.idGenerator.Generate(),
			UserID:    userID,
			CipherID:  change.CipherID,
			Type:      change.Type,
			Status:    status,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	changed, err := s.vaultTaskRepository.ApplyChanges(ctx, userID, newTasks, updates, now)
	if err != nil {
		return false, fmt.Errorf("update vault tasks: %w", err)
	}

	log.Debug().
		Str("func", "vaultTaskService.UpdateVaultTasks").
		Str("user_id", userID).
		Int("created", len(newTasks)).
		Int("updated", len(updates)).
		Bool("changed", changed).
		Msg("vault tasks updated")

	return changed, nil
}

func (s *vaultTaskService) PurgeCompleted(ctx context.Context, olderThan time.Time) (int64, error) {
	deleted, err := s.vaultTaskRepository.DeleteCompletedBefore(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("purge completed vault tasks: %w", err)
	}

	return deleted, nil
}
