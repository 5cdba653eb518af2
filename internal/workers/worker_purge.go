package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
)

// PurgeWorker periodically deletes completed tasks that have not changed
// for longer than the retention window.
type PurgeWorker struct {
	service   service.VaultTaskService
	interval  time.Duration
	retention time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewPurgeWorker(vaultTaskService service.VaultTaskService, cfg config.Workers, logger *logger.Logger) *PurgeWorker {
	return &PurgeWorker{
		service:   vaultTaskService,
		interval:  cfg.PurgeInterval,
		retention: cfg.CompletedRetention,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (p *PurgeWorker) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().
		Dur("interval", p.interval).
		Dur("retention", p.retention).
		Msg("purge worker started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("purge worker stopped")
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *PurgeWorker) purge(ctx context.Context) {
	olderThan := p.now().Add(-p.retention)

	deleted, err := p.service.PurgeCompleted(ctx, olderThan)
	if err != nil {
		p.logger.Err(err).Str("func", "*PurgeWorker.purge").Msg("purging completed vault tasks failed")
		return
	}

	p.logger.Debug().
		Str("func", "*PurgeWorker.purge").
		Int64("deleted", deleted).
		Time("older_than", olderThan).
		Msg("completed vault tasks purged")
}
