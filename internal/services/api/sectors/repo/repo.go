// Package repo provides postgres access for sector distributions
package repo

import (
	"context"

	"socsearch/internal/modkit/repokit"
)

// Repo defines the repository contract for distributions
type Repo interface {
	PercentageFor(ctx context.Context, code, sectorLabel string) (float64, bool, error)
	SharesFor(ctx context.Context, codes []string, sectorLabel string) (map[string]float64, error)
	TopShares(ctx context.Context, code string, n int) ([]RowShare, error)
	TopForSector(ctx context.Context, sectorLabel string, n int) ([]RowTop, error)
}

// RowShare is one (sector, percentage) pair for an occupation
type RowShare struct {
	SectorLabel string
	Percentage  float64
}

// RowTop is one top-occupations row joined to the catalog
type RowTop struct {
	Code        string
	Title       string
	Description string
	Percentage  float64
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) PercentageFor(ctx context.Context, code, sectorLabel string) (float64, bool, error) {
	const sql = `
select percentage::float8
from soc_sector_distribution
where soc_code = $1 and sector_label = $2
`
	rows, err := r.q.Query(ctx, sql, code, sectorLabel)
	if err != nil {
		return 0, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return 0, false, rows.Err()
	}
	var pct float64
	if err := rows.Scan(&pct); err != nil {
		return 0, false, err
	}
	return pct, true, rows.Err()
}

func (r *queries) SharesFor(ctx context.Context, codes []string, sectorLabel string) (map[string]float64, error) {
	if len(codes) == 0 {
		return map[string]float64{}, nil
	}
	const sql = `
select soc_code, percentage::float8
from soc_sector_distribution
where sector_label = $1 and soc_code = any($2)
`
	rows, err := r.q.Query(ctx, sql, sectorLabel, codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]float64, len(codes))
	for rows.Next() {
		var code string
		var pct float64
		if err := rows.Scan(&code, &pct); err != nil {
			return nil, err
		}
		out[code] = pct
	}
	return out, rows.Err()
}

func (r *queries) TopShares(ctx context.Context, code string, n int) ([]RowShare, error) {
	const sql = `
select sector_label, percentage::float8
from soc_sector_distribution
where soc_code = $1
order by percentage desc, sector_label asc
limit $2
`
	rows, err := r.q.Query(ctx, sql, code, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowShare
	for rows.Next() {
		var rr RowShare
		if err := rows.Scan(&rr.SectorLabel, &rr.Percentage); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) TopForSector(ctx context.Context, sectorLabel string, n int) ([]RowTop, error) {
	const sql = `
select d.soc_code, o.title, coalesce(o.description, ''), d.percentage::float8
from soc_sector_distribution d
join soc_detailed_occupations o on o.code = d.soc_code
where d.sector_label = $1
order by d.percentage desc, d.soc_code asc
limit $2
`
	rows, err := r.q.Query(ctx, sql, sectorLabel, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowTop
	for rows.Next() {
		var rr RowTop
		if err := rows.Scan(&rr.Code, &rr.Title, &rr.Description, &rr.Percentage); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
