// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the vault tasks server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-tasks/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault tasks
// server. Implementations attach the bearer token to every request and map
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// GetVaultTasks fetches the tasks of userID, optionally filtered by
	// status.
	GetVaultTasks(ctx context.Context, userID string, filter models.TaskFilter) (models.VaultTasksResponse, error)

	// UpdateVaultTasks sends a batch of changes. The integrity hash is
	// computed and attached automatically when the adapter has a hash key.
	// Returns the server's "changed" flag.
	UpdateVaultTasks(ctx context.Context, userID string, request models.VaultTasksRequest) (bool, error)

	// Version returns the server version reported by GET /api/version/.
	Version(ctx context.Context) (string, error)
}
