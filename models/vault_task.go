package models

import "time"

// TaskType defines what the user is asked to do with a vault item.
type TaskType string

const (
	// UpdateAtRiskCredential asks the user to rotate a weak, reused or
	// exposed password stored in the vault.
	UpdateAtRiskCredential TaskType = "update_at_risk_credential"

	// EnableTwoFactor asks the user to turn on two-factor authentication
	// for the account behind a vault item.
	EnableTwoFactor TaskType = "enable_two_factor"

	// ReviewSharedItem asks the user to review an item that was shared
	// with them or by them.
	ReviewSharedItem TaskType = "review_shared_item"
)

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case UpdateAtRiskCredential, EnableTwoFactor, ReviewSharedItem:
		return true
	default:
		return false
	}
}

// TaskStatus is the lifecycle state of a vault task.
type TaskStatus string

const (
	// Pending tasks are waiting for user action.
	Pending TaskStatus = "pending"

	// Completed tasks were resolved by the user.
	Completed TaskStatus = "completed"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	return s == Pending || s == Completed
}

// VaultTask is a single action item attached to a user's vault.
//
// Version is used for optimistic locking: every change increments it and a
// change request must carry the version it was based on.
type VaultTask struct {
	// ID is the server-assigned UUIDv7 of the task.
	ID string `json:"id"`

	// UserID is the owner of the task. It equals the subject of the
	// owner's access token.
	UserID string `json:"user_id"`

	// CipherID optionally references the vault item the task is about.
	CipherID string `json:"cipher_id,omitempty"`

	Type   TaskType   `json:"type"`
	Status TaskStatus `json:"status"`

	// Version starts at 1 and grows by one with every stored change.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with
// the VaultTask model.
func (t VaultTask) TableName() string {
	return "vault_tasks"
}

// TaskFilter narrows a task listing. Zero value means "everything".
type TaskFilter struct {
	Status TaskStatus `json:"status,omitempty"`
}
