package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-tasks/internal/adapter"
	"github.com/MKhiriev/go-vault-tasks/models"
)

type clientVaultTaskService struct {
	adapter adapter.ServerAdapter
	userID  string
}

func NewClientVaultTaskService(serverAdapter adapter.ServerAdapter, userID string) ClientVaultTaskService {
	return &clientVaultTaskService{adapter: serverAdapter, userID: userID}
}

func (c *clientVaultTaskService) UserID() string {
	return c.userID
}

func (c *clientVaultTaskService) List(ctx context.Context, filter models.TaskFilter) ([]models.VaultTask, error) {
	resp, err := c.adapter.GetVaultTasks(ctx, c.userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list vault tasks: %w", mapAdapterError(err))
	}

	if resp.Tasks == nil {
		return []models.VaultTask{}, nil
	}

	return resp.Tasks, nil
}

func (c *clientVaultTaskService) Create(ctx context.Context, taskType models.TaskType, cipherID string) (bool, error) {
	return c.Send(ctx, []models.VaultTaskChange{{Type: taskType, CipherID: cipherID}})
}

func (c *clientVaultTaskService) SetStatus(ctx context.Context, task models.VaultTask, status models.TaskStatus) (bool, error) {
	return c.Send(ctx, []models.VaultTaskChange{{ID: task.ID, Status: status, Version: task.Version}})
}

func (c *clientVaultTaskService) Send(ctx context.Context, changes []models.VaultTaskChange) (bool, error) {
	if len(changes) == 0 {
		return false, ErrValidationNoTasks
	}

	changed, err := c.adapter.UpdateVaultTasks(ctx, c.userID, models.VaultTasksRequest{Tasks: changes})
	if err != nil {
		return false, fmt.Errorf("send vault task changes: %w", mapAdapterError(err))
	}

	return changed, nil
}

func (c *clientVaultTaskService) ServerVersion(ctx context.Context) (string, error) {
	v, err := c.adapter.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("get server version: %w", mapAdapterError(err))
	}

	return v, nil
}
