// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultTaskChange is one entry of a [VaultTasksRequest].
//
// An entry with a non-empty ID updates the status of an existing task and
// must carry the Version it was based on. An entry with an empty ID creates
// a new task of the given Type; Status defaults to [Pending].
type VaultTaskChange struct {
	ID       string     `json:"id,omitempty"`
	CipherID string     `json:"cipher_id,omitempty"`
	Type     TaskType   `json:"type,omitempty"`
	Status   TaskStatus `json:"status,omitempty"`
	Version  int64      `json:"version,omitempty"`
}

// IsCreate reports whether the change creates a new task.
func (c VaultTaskChange) IsCreate() bool {
	return c.ID == ""
}

// VaultTasksRequest is the body of POST /vault-tasks/user/{id}.
//
// All changes are applied atomically: either every change is stored or none.
type VaultTasksRequest struct {
	// Tasks is the list of changes to apply.
	Tasks []VaultTaskChange `json:"tasks"`

	// Hash is the hex-encoded HMAC-SHA256 of the JSON-encoded Tasks.
	// Required only when the server runs with an integrity hash key.
	Hash string `json:"hash,omitempty"`
}
