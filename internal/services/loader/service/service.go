// Package service implements the catalog loader
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"socsearch/internal/modkit/repokit"
	perr "socsearch/internal/platform/errors"
	"socsearch/internal/platform/logger"
	"socsearch/internal/services/loader/domain"
)

// Service defines the service contract for catalog loads
type Service interface{ domain.RunnerPort }

// Svc implements the Service interface
type Svc struct {
	binder repokit.Binder[domain.StorageRepo]
	db     repokit.TxRunner
}

// New creates a new loader service
func New(db repokit.TxRunner, binder repokit.Binder[domain.StorageRepo]) *Svc {
	if db == nil {
		panic("loader.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("loader.Service requires a non nil Repo binder")
	}
	return &Svc{binder: binder, db: db}
}

// Load replaces the whole catalog with the snapshot in one transaction.
// In-flight readers keep seeing the previous catalog until commit.
func (s *Svc) Load(ctx context.Context, snap domain.Snapshot) (domain.LoadStats, error) {
	if len(snap.Occupations) == 0 {
		return domain.LoadStats{}, perr.Validationf("refusing to load an empty catalog")
	}

	stats := domain.LoadStats{BatchID: uuid.New().String()}
	start := time.Now()
	log := logger.Named("loader")

	log.Info().
		Str("batch_id", stats.BatchID).
		Int("occupations", len(snap.Occupations)).
		Int("distribution_rows", len(snap.Distribution)).
		Msg("catalog load starting")

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.DeleteAll(ctx); err != nil {
			return err
		}
		var err error
		if stats.Majors, err = r.InsertMajorGroups(ctx, snap.Majors); err != nil {
			return err
		}
		if stats.Minors, err = r.InsertMinorGroups(ctx, snap.Minors); err != nil {
			return err
		}
		if stats.Occupations, err = r.InsertOccupations(ctx, snap.Occupations); err != nil {
			return err
		}
		stats.Distribution, err = r.InsertDistribution(ctx, snap.Distribution)
		return err
	})
	if err != nil {
		return domain.LoadStats{}, perr.FromPostgres(err, "catalog load failed")
	}

	stats.Elapsed = time.Since(start)
	log.Info().
		Str("batch_id", stats.BatchID).
		Int("majors", stats.Majors).
		Int("minors", stats.Minors).
		Int("occupations", stats.Occupations).
		Int("distribution_rows", stats.Distribution).
		Dur("elapsed", stats.Elapsed).
		Msg("catalog load complete")
	return stats, nil
}
