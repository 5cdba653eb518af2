// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/models"
)

// vaultTaskRepository is the database/sql implementation of
// [VaultTaskRepository]. It works against both PostgreSQL and SQLite; the
// dialect differences live in the embedded [*DB].
type vaultTaskRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultTaskRepository constructs a [VaultTaskRepository] backed by db.
func NewVaultTaskRepository(db *DB, logger *logger.Logger) VaultTaskRepository {
	return &vaultTaskRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanVaultTask(row rowScanner) (models.VaultTask, error) {
	var task models.VaultTask

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.CipherID,
		&task.Type,
		&task.Status,
		&task.Version,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	return task, err
}

// GetTasks returns the user's tasks ordered by creation time.
func (r *vaultTaskRepository) GetTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.VaultTask, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildSelectTasksQuery(userID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "vaultTaskRepository.GetTasks").
			Str("user_id", userID).
			Msg("failed to build query")
		return nil, err
	}

	var tasks []models.VaultTask
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		tasks = make([]models.VaultTask, 0, 16)
		for rows.Next() {
			task, scanErr := scanVaultTask(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			tasks = append(tasks, task)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultTaskRepository.GetTasks").
			Str("user_id", userID).
			Str("status", string(filter.Status)).
			Msg("failed to get vault tasks")
		return nil, err
	}

	log.Debug().
		Str("func", "vaultTaskRepository.GetTasks").
		Str("user_id", userID).
		Int("count", len(tasks)).
		Msg("vault tasks fetched")

	return tasks, nil
}

// ApplyChanges inserts newTasks and applies updates inside one transaction.
//
// For each update the stored status and version are read first:
//   - no row for (id, user_id) → [ErrVaultTaskNotFound];
//   - stored version differs from the supplied one → [ErrVersionConflict];
//   - stored status equals the requested one → skipped, nothing written.
//
// The UPDATE itself is guarded by the version as well, so a concurrent
// writer that slipped in between the read and the write also yields
// [ErrVersionConflict]. Any error rolls the whole transaction back.
func (r *vaultTaskRepository) ApplyChanges(ctx context.Context, userID string, newTasks []models.VaultTask, updates []models.VaultTaskChange, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	var changed bool
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var txErr error
		changed, txErr = r.applyChangesTx(ctx, userID, newTasks, updates, now)
		return txErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultTaskRepository.ApplyChanges").
			Str("user_id", userID).
			Int("new_tasks", len(newTasks)).
			Int("updates", len(updates)).
			Msg("failed to apply vault task changes")
		return false, err
	}

	log.Info().
		Str("func", "vaultTaskRepository.ApplyChanges").
		Str("user_id", userID).
		Int("new_tasks", len(newTasks)).
		Int("updates", len(updates)).
		Bool("changed", changed).
		Msg("vault task changes applied")

	return changed, nil
}

func (r *vaultTaskRepository) applyChangesTx(ctx context.Context, userID string, newTasks []models.VaultTask, updates []models.VaultTaskChange, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	changed := false

	for idx, task := range newTasks {
		query, args, buildErr := r.buildInsertTaskQuery(task)
		if buildErr != nil {
			return false, buildErr
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			if r.isUniqueViolation(execErr) {
				return false, fmt.Errorf("task %s: %w", task.ID, ErrVaultTaskAlreadyExists)
			}
			return false, fmt.Errorf("%w: insert at index %d: %w", ErrExecutingStatement, idx, execErr)
		}

		log.Debug().
			Str("func", "vaultTaskRepository.applyChangesTx").
			Int("iteration", idx+1).
			Str("id", task.ID).
			Msg("inserted vault task")
		changed = true
	}

	for idx, update := range updates {
		query, args, buildErr := r.buildSelectTaskStateQuery(update.ID, userID)
		if buildErr != nil {
			return false, buildErr
		}

		var (
			status  models.TaskStatus
			version int64
		)
		scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&status, &version)
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "vaultTaskRepository.applyChangesTx").
				Str("id", update.ID).
				Msg("record not found")
			return false, fmt.Errorf("task %s: %w", update.ID, ErrVaultTaskNotFound)
		}
		if scanErr != nil {
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}

		if version != update.Version {
			log.Warn().
				Str("func", "vaultTaskRepository.applyChangesTx").
				Str("id", update.ID).
				Int64("db_version", version).
				Int64("provided_version", update.Version).
				Msg("optimistic lock failed: version mismatch")
			return false, fmt.Errorf("task %s at index %d: %w", update.ID, idx, ErrVersionConflict)
		}

		if status == update.Status {
			log.Debug().
				Str("func", "vaultTaskRepository.applyChangesTx").
				Str("id", update.ID).
				Msg("status unchanged, skipping")
			continue
		}

		query, args, buildErr = r.buildUpdateStatusQuery(userID, update, now)
		if buildErr != nil {
			return false, buildErr
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return false, fmt.Errorf("%w: update at index %d: %w", ErrExecutingStatement, idx, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return false, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		if affected == 0 {
			return false, fmt.Errorf("task %s at index %d: %w", update.ID, idx, ErrVersionConflict)
		}

		changed = true
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return changed, nil
}

// DeleteCompletedBefore removes completed tasks whose updated_at is older
// than before.
func (r *vaultTaskRepository) DeleteCompletedBefore(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteCompletedQuery(before)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = r.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := r.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		deleted = affected

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultTaskRepository.DeleteCompletedBefore").
			Time("before", before).
			Msg("failed to delete completed vault tasks")
		return 0, err
	}

	log.Info().
		Str("func", "vaultTaskRepository.DeleteCompletedBefore").
		Time("before", before).
		Int64("deleted", deleted).
		Msg("completed vault tasks purged")

	return deleted, nil
}
