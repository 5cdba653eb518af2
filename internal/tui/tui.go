// Package tui implements the terminal client: a list of the user's vault
// tasks where tasks can be marked completed or pending and sent back to the
// server.
package tui

import (
	"context"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.VaultTaskService == nil {
		return nil, ErrNoServices
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the task list until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newTasksModel(ctx, t.services.VaultTaskService, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(tasksModel); ok && result.errMsg != "" {
		t.logger.Warn().Str("last_error", result.errMsg).Msg("client exited with an error on screen")
	}

	return nil
}
