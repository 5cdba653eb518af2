// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the server handlers and the
// client error mapper.
//
// The server writes a Msg* constant into every error response body; the
// client matches the body against the same constants to recover a typed
// error. Keeping them in one place keeps both sides in agreement.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRequestBodyTooLarge is returned when the request body exceeds the
	// server's size limit.
	MsgRequestBodyTooLarge = "request body is too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "internal server error"

	// MsgEmptyAuthorizationHeader is returned when no "Authorization"
	// header is present.
	MsgEmptyAuthorizationHeader = "authorization header is required"

	// MsgTokenIsExpired is returned when a JWT is well-formed but past its
	// expiry time.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingCapability is returned when a valid token lacks the
	// capability a route requires.
	MsgMissingCapability = "token lacks required capability"

	// MsgAccessDenied is returned when the caller addresses another user's
	// tasks.
	MsgAccessDenied = "access denied"

	// MsgNoTasksProvided is returned when an update carries no changes.
	MsgNoTasksProvided = "no tasks provided"

	// MsgInvalidStatus is returned for an unknown status in a filter or
	// change.
	MsgInvalidStatus = "invalid task status"

	// MsgIntegrityCheckFailed is returned when the request hash does not
	// match its content.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgTaskNotFound is returned when an update targets an unknown task.
	MsgTaskNotFound = "vault task not found"

	// MsgTaskAlreadyExists is returned when a creation collides with an
	// existing task id.
	MsgTaskAlreadyExists = "vault task already exists"

	// MsgVersionConflict is returned when the supplied version no longer
	// matches the stored one. The client should reload before retrying.
	MsgVersionConflict = "version conflict, please reload"

	// MsgVersionIsNotSpecified is returned when the application version
	// was not configured.
	MsgVersionIsNotSpecified = "version is not specified"
)
