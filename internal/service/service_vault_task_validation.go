package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/validators"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// VaultTaskValidationService rejects malformed input before it reaches the
// wrapped [VaultTaskService]. Every rejection wraps [ErrInvalidDataProvided]
// and, where one exists, a more specific service error.
type VaultTaskValidationService struct {
	inner     VaultTaskService
	validator validators.Validator
}

func NewVaultTaskValidationService() VaultTaskServiceWrapper {
	return &VaultTaskValidationService{
		validator: validators.NewVaultTaskValidator(),
	}
}

func (v *VaultTaskValidationService) Wrap(inner VaultTaskService) VaultTaskService {
	v.inner = inner
	return v
}

func (v *VaultTaskValidationService) GetVaultTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.VaultTask, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}

	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, v.wrapValidationError(ctx, err)
	}

	return v.inner.GetVaultTasks(ctx, userID, filter)
}

func (v *VaultTaskValidationService) UpdateVaultTasks(ctx context.Context, userID string, request models.VaultTasksRequest) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoUserID)
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return false, v.wrapValidationError(ctx, err)
	}

	return v.inner.UpdateVaultTasks(ctx, userID, request)
}

func (v *VaultTaskValidationService) PurgeCompleted(ctx context.Context, olderThan time.Time) (int64, error) {
	if olderThan.IsZero() {
		return 0, fmt.Errorf("%w: zero purge threshold", ErrInvalidDataProvided)
	}

	return v.inner.PurgeCompleted(ctx, olderThan)
}

func (v *VaultTaskValidationService) wrapValidationError(ctx context.Context, err error) error {
	logger.FromContext(ctx).Warn().Err(err).Str("func", "VaultTaskValidationService").Msg("validation failed")

	switch {
	case errors.Is(err, validators.ErrEmptyChanges):
		return fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, ErrValidationNoTasks, err)
	case errors.Is(err, validators.ErrInvalidStatus):
		return fmt.Errorf("%w: %w: %w", ErrInvalidDataProvided, ErrValidationInvalidStatus, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
