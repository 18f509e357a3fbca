// Package service contains sector distribution workflows
package service

import (
	"context"
	"strings"

	"socsearch/internal/modkit/repokit"
	perr "socsearch/internal/platform/errors"
	"socsearch/internal/services/api/sectors/domain"
	"socsearch/internal/services/api/sectors/repo"
)

// TopN is the fixed size of the top-occupations list
const TopN = 10

// Service defines the service contract for distributions
type Service interface {
	domain.ServicePort
	domain.DistributionPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new distributions service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("sectors.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("sectors.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// TopForSector returns the highest-distribution occupations for a sector
// an unknown sector yields an empty list, not an error
func (s *Svc) TopForSector(ctx context.Context, sector string) ([]domain.TopOccupation, error) {
	if strings.TrimSpace(sector) == "" {
		return nil, perr.WithField(perr.Validationf("sector is required"), "sector")
	}
	rows, err := s.Repo.TopForSector(ctx, domain.Label(sector), TopN)
	if err != nil {
		return nil, perr.FromPostgres(err, "top occupations query failed")
	}
	out := make([]domain.TopOccupation, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.TopOccupation{
			Code:        r.Code,
			Title:       r.Title,
			Description: r.Description,
			Percentage:  r.Percentage,
		})
	}
	return out, nil
}

// PercentageFor returns the share for one (code, sector) pair, 0 when absent
func (s *Svc) PercentageFor(ctx context.Context, code, sectorLabel string) (float64, error) {
	pct, ok, err := s.Repo.PercentageFor(ctx, code, sectorLabel)
	if err != nil {
		return 0, perr.FromPostgres(err, "distribution lookup failed")
	}
	if !ok {
		return 0, nil
	}
	return pct, nil
}

// SharesFor returns shares for many codes at once; absent codes are omitted
func (s *Svc) SharesFor(ctx context.Context, codes []string, sectorLabel string) (map[string]float64, error) {
	out, err := s.Repo.SharesFor(ctx, codes, sectorLabel)
	if err != nil {
		return nil, perr.FromPostgres(err, "distribution batch lookup failed")
	}
	return out, nil
}

// TopShares returns up to n highest sector rows for one occupation
func (s *Svc) TopShares(ctx context.Context, code string, n int) ([]domain.SectorShare, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.Repo.TopShares(ctx, code, n)
	if err != nil {
		return nil, perr.FromPostgres(err, "top shares query failed")
	}
	out := make([]domain.SectorShare, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SectorShare{SectorLabel: r.SectorLabel, Percentage: r.Percentage})
	}
	return out, nil
}
