package models

// VaultTasksResponse is the payload returned by GET /vault-tasks/user/{id}.
type VaultTasksResponse struct {
	// UserID is the owner of the listed tasks.
	UserID string `json:"user_id"`

	// Tasks holds the user's tasks ordered by creation time.
	Tasks []VaultTask `json:"tasks"`

	// Length is the number of entries in Tasks.
	Length int `json:"length"`
}
