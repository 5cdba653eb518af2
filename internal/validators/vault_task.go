package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-tasks/internal/utils"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTasks targets the change list of a [models.VaultTasksRequest].
	FieldTasks = "tasks"

	// FieldID targets the task id of a change. Updates must carry the UUID
	// assigned by the server.
	FieldID = "id"

	// FieldType targets the task type. Required for creations, forbidden
	// for updates.
	FieldType = "type"

	// FieldStatus targets the task status.
	FieldStatus = "status"

	// FieldVersion targets the optimistic lock version of an update.
	FieldVersion = "version"

	// FieldCipherID targets the optional vault item reference.
	FieldCipherID = "cipher_id"
)

const (
	// MaxChangesPerRequest bounds the size of one POST body.
	MaxChangesPerRequest = 100

	maxIDLength = 128
)

type VaultTaskValidator struct {
}

func NewVaultTaskValidator() Validator {
	return &VaultTaskValidator{}
}

func (v *VaultTaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultTasksRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.VaultTasksRequest:
		return v.validateRequest(ctx, *value, fields...)

	case models.VaultTaskChange:
		return v.validateChange(ctx, value, fields...)
	case *models.VaultTaskChange:
		return v.validateChange(ctx, *value, fields...)

	case models.TaskFilter:
		return v.validateFilter(value)
	case *models.TaskFilter:
		return v.validateFilter(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultTaskValidator) validateRequest(ctx context.Context, request models.VaultTasksRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTasks}
	}

	for _, f := range fields {
		switch f {
		case FieldTasks:
			if len(request.Tasks) == 0 {
				return ErrEmptyChanges
			}
			if len(request.Tasks) > MaxChangesPerRequest {
				return fmt.Errorf("%w: %d > %d", ErrTooManyChanges, len(request.Tasks), MaxChangesPerRequest)
			}

			seen := make(map[string]struct{}, len(request.Tasks))
			for i, change := range request.Tasks {
				if err := v.validateChange(ctx, change); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}

				if change.IsCreate() {
					continue
				}
				if _, ok := seen[change.ID]; ok {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateTaskID)
				}
				seen[change.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateChange applies different rules to creations and updates. With no
// explicit fields every rule of the change's kind is checked.
func (v *VaultTaskValidator) validateChange(_ context.Context, change models.VaultTaskChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldStatus, FieldVersion, FieldCipherID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			// an empty id marks a creation, so only updates are checked here
			if !change.IsCreate() && !utils.IsUUID(change.ID) {
				return ErrInvalidTaskID
			}
		case FieldType:
			if change.IsCreate() && !change.Type.Valid() {
				return ErrInvalidType
			}
			if !change.IsCreate() && change.Type != "" {
				return ErrImmutableField
			}
		case FieldStatus:
			if change.IsCreate() {
				if change.Status != "" && !change.Status.Valid() {
					return ErrInvalidStatus
				}
				continue
			}
			if change.Status == "" {
				return ErrNoStatusOnUpdate
			}
			if !change.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldVersion:
			if change.IsCreate() && change.Version != 0 {
				return ErrVersionOnCreate
			}
			if !change.IsCreate() && change.Version <= 0 {
				return ErrInvalidVersion
			}
		case FieldCipherID:
			if !change.IsCreate() && change.CipherID != "" {
				return ErrImmutableField
			}
			if len(change.CipherID) > maxIDLength {
				return ErrCipherIDTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultTaskValidator) validateFilter(filter models.TaskFilter) error {
	if filter.Status != "" && !filter.Status.Valid() {
		return ErrInvalidStatus
	}

	return nil
}
