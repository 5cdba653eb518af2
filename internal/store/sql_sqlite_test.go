package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(testContext(), config.Storage{
		DB: config.DB{DSN: ":memory:", Driver: config.DriverSQLite},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLite_RoundTrip(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := testContext()
	repo := s.VaultTaskRepository
	require.NoError(t, s.Ping(ctx))

	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	task := models.VaultTask{
		ID: "t1", UserID: "user-1", CipherID: "c1",
		Type: models.UpdateAtRiskCredential, Status: models.Pending,
		Version: 1, CreatedAt: created, UpdatedAt: created,
	}

	changed, err := repo.ApplyChanges(ctx, "user-1", []models.VaultTask{task}, nil, created)
	require.NoError(t, err)
	assert.True(t, changed)

	tasks, err := repo.GetTasks(ctx, "user-1", models.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "c1", tasks[0].CipherID)
	assert.True(t, created.Equal(tasks[0].CreatedAt))

	other, err := repo.GetTasks(ctx, "user-2", models.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, other)

	// another user cannot touch the task
	_, err = repo.ApplyChanges(ctx, "user-2", nil,
		[]models.VaultTaskChange{{ID: "t1", Status: models.Completed, Version: 1}}, created)
	require.ErrorIs(t, err, ErrVaultTaskNotFound)

	changed, err = repo.ApplyChanges(ctx, "user-1", nil,
		[]models.VaultTaskChange{{ID: "t1", Status: models.Completed, Version: 1}}, created)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = repo.ApplyChanges(ctx, "user-1", nil,
		[]models.VaultTaskChange{{ID: "t1", Status: models.Pending, Version: 1}}, created)
	require.ErrorIs(t, err, ErrVersionConflict)

	completed, err := repo.GetTasks(ctx, "user-1", models.TaskFilter{Status: models.Completed})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, int64(2), completed[0].Version)

	_, err = repo.ApplyChanges(ctx, "user-1", []models.VaultTask{task}, nil, created)
	require.ErrorIs(t, err, ErrVaultTaskAlreadyExists)

	deleted, err := repo.DeleteCompletedBefore(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
