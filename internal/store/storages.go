package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the connection they share.
type Storages struct {
	VaultTaskRepository VaultTaskRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "store.NewStorages").Msg("failed to apply migrations")
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Storages{
		VaultTaskRepository: NewVaultTaskRepository(db, log),
		db:                  db,
	}, nil
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the shared database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
