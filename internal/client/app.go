package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	out      io.Writer

	logger *logger.Logger
}

var ErrNoClientServices = errors.New("client services are not set")

func NewApp(services *service.ClientServices, ui UI, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.VaultTaskService == nil {
		return nil, ErrNoClientServices
	}

	return &App{services: services, ui: ui, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, cmd Command) error {
	a.logger.Info().Int("mode", int(cmd.Mode)).Str("user_id", a.services.VaultTaskService.UserID()).Msg("client started")

	switch cmd.Mode {
	case ModeList:
		return a.list(ctx, cmd.Status)
	case ModeCreate:
		return a.create(ctx, cmd.TaskType, cmd.CipherID)
	case ModeComplete:
		return a.complete(ctx, cmd.TaskID)
	}

	if version, err := a.services.VaultTaskService.ServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version is unknown")
	} else {
		a.logger.Info().Str("server_version", version).Send()
	}

	return a.ui.Run(ctx)
}

func (a *App) list(ctx context.Context, status models.TaskStatus) error {
	svc := a.services.VaultTaskService

	tasks, err := svc.List(ctx, models.TaskFilter{Status: status})
	if err != nil {
		return err
	}

	return a.print(models.VaultTasksResponse{UserID: svc.UserID(), Tasks: tasks, Length: len(tasks)})
}

func (a *App) create(ctx context.Context, taskType models.TaskType, cipherID string) error {
	changed, err := a.services.VaultTaskService.Create(ctx, taskType, cipherID)
	if err != nil {
		return err
	}

	return a.print(changed)
}

// complete looks the task up first so the update carries its current version.
func (a *App) complete(ctx context.Context, taskID string) error {
	svc := a.services.VaultTaskService

	tasks, err := svc.List(ctx, models.TaskFilter{})
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.ID != taskID {
			continue
		}

		changed, err := svc.SetStatus(ctx, task, models.Completed)
		if err != nil {
			return err
		}
		return a.print(changed)
	}

	return fmt.Errorf("task %s: %w", taskID, store.ErrVaultTaskNotFound)
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
