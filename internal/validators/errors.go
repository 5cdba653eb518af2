package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyChanges     = errors.New("tasks list cannot be empty")
	ErrTooManyChanges   = errors.New("too many task changes in one request")
	ErrDuplicateTaskID  = errors.New("task id is repeated in one request")
	ErrInvalidTaskID    = errors.New("invalid task id")
	ErrInvalidType      = errors.New("invalid task type")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrImmutableField   = errors.New("type and cipher_id cannot be changed")
	ErrCipherIDTooLong  = errors.New("cipher_id is too long")
	ErrVersionOnCreate  = errors.New("version must be empty for a new task")
	ErrNoStatusOnUpdate = errors.New("status is required for an update")
)
