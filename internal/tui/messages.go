package tui

import "github.com/MKhiriev/go-vault-tasks/models"

type tasksLoadedMsg struct {
	tasks []models.VaultTask
	err   error
}

type sentMsg struct {
	changed bool
	err     error
}

type versionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}
