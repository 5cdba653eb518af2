// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectTasksSQL     = `SELECT id, user_id, cipher_id, type, status, version, created_at, updated_at FROM vault_tasks WHERE user_id = $1 ORDER BY created_at, id`
	selectTasksByState = `SELECT id, user_id, cipher_id, type, status, version, created_at, updated_at FROM vault_tasks WHERE user_id = $1 AND status = $2 ORDER BY created_at, id`
	selectTaskStateSQL = `SELECT status, version FROM vault_tasks WHERE id = $1 AND user_id = $2`
	insertTaskSQL      = `INSERT INTO vault_tasks (id,user_id,cipher_id,type,status,version,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	updateStatusSQL    = `UPDATE vault_tasks SET status = $1, updated_at = $2, version = version + 1 WHERE id = $3 AND user_id = $4 AND version = $5`
	deleteCompletedSQL = `DELETE FROM vault_tasks WHERE status = $1 AND updated_at < $2`
)

func pgTestDB() *DB {
	db, _ := newDB(nil, config.DriverPostgres, nil)
	return db
}

func Test_buildSelectTasksQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.TaskFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    models.TaskFilter{},
			wantQuery: selectTasksSQL,
			wantArgs:  []any{"user-1"},
		},
		{
			name:      "status filter",
			filter:    models.TaskFilter{Status: models.Pending},
			wantQuery: selectTasksByState,
			wantArgs:  []any{"user-1", "pending"},
		},
	}

	db := pgTestDB()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := db.buildSelectTasksQuery("user-1", tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSelectTaskStateQuery(t *testing.T) {
	query, args, err := pgTestDB().buildSelectTaskStateQuery("task-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, selectTaskStateSQL, query)
	assert.Equal(t, []any{"task-1", "user-1"}, args)
}

func Test_buildInsertTaskQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := models.VaultTask{
		ID:        "task-1",
		UserID:    "user-1",
		CipherID:  "cipher-1",
		Type:      models.EnableTwoFactor,
		Status:    models.Pending,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query, args, err := pgTestDB().buildInsertTaskQuery(task)
	require.NoError(t, err)
	assert.Equal(t, insertTaskSQL, query)
	assert.Equal(t, []any{"task-1", "user-1", "cipher-1", "enable_two_factor", "pending", int64(1), now, now}, args)
}

func Test_buildUpdateStatusQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	change := models.VaultTaskChange{ID: "task-1", Status: models.Completed, Version: 3}

	query, args, err := pgTestDB().buildUpdateStatusQuery("user-1", change, now)
	require.NoError(t, err)
	assert.Equal(t, updateStatusSQL, query)
	assert.Equal(t, []any{"completed", now, "task-1", "user-1", int64(3)}, args)
}

func Test_buildDeleteCompletedQuery(t *testing.T) {
	before := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := pgTestDB().buildDeleteCompletedQuery(before)
	require.NoError(t, err)
	assert.Equal(t, deleteCompletedSQL, query)
	assert.Equal(t, []any{"completed", before}, args)
}

func Test_buildQueries_SQLitePlaceholders(t *testing.T) {
	db, err := newDB(nil, config.DriverSQLite, nil)
	require.NoError(t, err)

	query, _, err := db.buildSelectTaskStateQuery("task-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, `SELECT status, version FROM vault_tasks WHERE id = ? AND user_id = ?`, query)
	assert.NotContains(t, query, "$1")
}
