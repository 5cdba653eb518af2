package service

import "github.com/MKhiriev/go-vault-tasks/internal/adapter"

type ClientServices struct {
	VaultTaskService ClientVaultTaskService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, userID string) *ClientServices {
	return &ClientServices{
		VaultTaskService: NewClientVaultTaskService(serverAdapter, userID),
	}
}
