// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
)

// ErrNoServices is returned by New when no client services are given.
var ErrNoServices = errors.New("tui: client services are not set")

// humanizeError turns service errors into short status-line text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrVersionConflict):
		return "Task was changed elsewhere, press r to reload"
	case errors.Is(err, store.ErrVaultTaskNotFound):
		return "Task no longer exists, press r to reload"
	case errors.Is(err, service.ErrTokenIsExpired):
		return "Access token expired, issue a new one"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Access token is invalid"
	case errors.Is(err, service.ErrMissingCapability),
		errors.Is(err, service.ErrUnauthorizedAccessToDifferentUserData):
		return "Access denied"
	case errors.Is(err, service.ErrIntegrityCheckFailed):
		return "Integrity check failed, check the hash key"
	case errors.Is(err, service.ErrServerUnavailable):
		return "Server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or server is unavailable"
	}

	return err.Error()
}
