// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the authentication middleware when
// the request carries no "Authorization" header at all. Malformed headers are
// reported by [utils.ParseBearerToken].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
