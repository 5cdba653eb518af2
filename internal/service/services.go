package service

import (
	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/internal/utils"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// Services is the set of server-side services handed to the transport layer.
type Services struct {
	AuthService      AuthService
	VaultTaskService VaultTaskService
	AppInfoService   AppInfoService
}

// NewServices wires the services over storages. The vault task service is
// wrapped with input validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	vaultTaskService := NewVaultTaskService(storages.VaultTaskRepository, utils.NewUUIDGenerator(), logger)

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		VaultTaskService: NewVaultTaskValidationService().Wrap(vaultTaskService),
		AppInfoService:   appInfoService,
	}, nil
}
