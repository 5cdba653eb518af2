package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrMissingCapability                     = errors.New("token lacks required capability")
	ErrUnauthorizedAccessToDifferentUserData = errors.New("access to another user's vault tasks is denied")

	ErrIntegrityCheckFailed = errors.New("request integrity check failed")

	ErrValidationNoUserID      = errors.New("no user ID for vault tasks was given")
	ErrValidationNoTasks       = errors.New("no vault task changes provided")
	ErrValidationInvalidStatus = errors.New("invalid vault task status")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrServerUnavailable = errors.New("server is unavailable")
)
