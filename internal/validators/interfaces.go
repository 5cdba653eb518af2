// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault task requests before they reach the task
// service. It is used through the service validation wrapper.
package validators

import "context"

// Validator checks a value. Field names, when given, limit the check to
// those parts of the value.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
