// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-tasks/models"
	sq "github.com/Masterminds/squirrel"
)

var vaultTasksTable = models.VaultTask{}.TableName()

// vaultTaskColumns lists the columns in the order scanVaultTask expects.
var vaultTaskColumns = []string{
	"id",
	"user_id",
	"cipher_id",
	"type",
	"status",
	"version",
	"created_at",
	"updated_at",
}

// buildSelectTasksQuery selects the user's tasks, optionally narrowed to a
// single status, ordered by creation time.
func (db *DB) buildSelectTasksQuery(userID string, filter models.TaskFilter) (string, []any, error) {
	builder := db.builder.
		Select(vaultTaskColumns...).
		From(vaultTasksTable).
		Where(sq.Eq{"user_id": userID})

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
	}

	query, args, err := builder.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectTaskStateQuery reads the status and version of one task owned
// by userID.
func (db *DB) buildSelectTaskStateQuery(taskID, userID string) (string, []any, error) {
	query, args, err := db.builder.
		Select("status", "version").
		From(vaultTasksTable).
		Where(sq.Eq{"id": taskID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildInsertTaskQuery(task models.VaultTask) (string, []any, error) {
	query, args, err := db.builder.
		Insert(vaultTasksTable).
		Columns(vaultTaskColumns...).
		Values(
			task.ID,
			task.UserID,
			task.CipherID,
			string(task.Type),
			string(task.Status),
			task.Version,
			task.CreatedAt,
			task.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateStatusQuery sets a new status and bumps the version, guarded by
// the version the caller read. Zero affected rows means the guard failed.
func (db *DB) buildUpdateStatusQuery(userID string, change models.VaultTaskChange, now time.Time) (string, []any, error) {
	query, args, err := db.builder.
		Update(vaultTasksTable).
		Set("status", string(change.Status)).
		Set("updated_at", now).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": change.ID}).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"version": change.Version}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) buildDeleteCompletedQuery(before time.Time) (string, []any, error) {
	query, args, err := db.builder.
		Delete(vaultTasksTable).
		Where(sq.Eq{"status": string(models.Completed)}).
		Where(sq.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
