// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-tasks/internal/adapter"
	"github.com/MKhiriev/go-vault-tasks/internal/app"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ResponseBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgIntegrityCheckFailed:
			return ErrIntegrityCheckFailed
		case app.MsgNoTasksProvided:
			return ErrValidationNoTasks
		case app.MsgInvalidStatus:
			return ErrValidationInvalidStatus
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrRequestTooLarge):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, app.MsgRequestBodyTooLarge)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgTokenIsExpired {
			return ErrTokenIsExpired
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		if msg == app.MsgMissingCapability {
			return ErrMissingCapability
		}
		return ErrUnauthorizedAccessToDifferentUserData

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrVaultTaskNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgTaskAlreadyExists {
			return store.ErrVaultTaskAlreadyExists
		}
		return store.ErrVersionConflict

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrServerUnavailable
	}

	return err
}
