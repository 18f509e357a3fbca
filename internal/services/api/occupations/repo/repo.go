// Package repo provides postgres access for the occupation catalog
package repo

import (
	"context"
	"encoding/json"

	"socsearch/internal/modkit/repokit"
)

// Repo defines the repository contract for the catalog
type Repo interface {
	ByCode(ctx context.Context, code string) (*RowOccupation, error)
	Groups(ctx context.Context) ([]RowGroup, error)
	OccupationsByTitle(ctx context.Context, q string) ([]RowGroupOccupation, error)
}

// RowOccupation is one occupation row joined to its hierarchy
type RowOccupation struct {
	Code              string
	Title             string
	Description       string
	AlternativeTitles []string
	MinorGroupCode    string
	MinorGroupTitle   string
	MajorGroupCode    string
	MajorGroupTitle   string
}

// RowGroup is one minor group row joined to its major group
type RowGroup struct {
	MajorCode        string
	MajorTitle       string
	MajorDescription string
	MinorCode        string
	MinorTitle       string
	MinorDescription string
}

// RowGroupOccupation is a compact occupation row keyed by minor group
type RowGroupOccupation struct {
	MinorGroupCode string
	Code           string
	Title          string
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

func (r *queries) ByCode(ctx context.Context, code string) (*RowOccupation, error) {
	const sql = `
select o.code, o.title, coalesce(o.description, ''),
coalesce(o.alternative_titles, '[]'::jsonb),
mi.code, mi.title, ma.code, ma.title
from soc_detailed_occupations o
join soc_minor_groups mi on mi.code = o.minor_group_code
join soc_major_groups ma on ma.code = mi.major_group_code
where o.code = $1
`
	rows, err := r.q.Query(ctx, sql, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var rr RowOccupation
	var alts []byte
	if err := rows.Scan(
		&rr.Code,
		&rr.Title,
		&rr.Description,
		&alts,
		&rr.MinorGroupCode,
		&rr.MinorGroupTitle,
		&rr.MajorGroupCode,
		&rr.MajorGroupTitle,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(alts, &rr.AlternativeTitles); err != nil {
		return nil, err
	}
	return &rr, rows.Err()
}

func (r *queries) Groups(ctx context.Context) ([]RowGroup, error) {
	const sql = `
select ma.code, ma.title, coalesce(ma.description, ''),
mi.code, mi.title, coalesce(mi.description, '')
from soc_major_groups ma
join soc_minor_groups mi on mi.major_group_code = ma.code
order by ma.code, mi.code
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowGroup
	for rows.Next() {
		var rr RowGroup
		if err := rows.Scan(
			&rr.MajorCode,
			&rr.MajorTitle,
			&rr.MajorDescription,
			&rr.MinorCode,
			&rr.MinorTitle,
			&rr.MinorDescription,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) OccupationsByTitle(ctx context.Context, q string) ([]RowGroupOccupation, error) {
	const sql = `
select o.minor_group_code, o.code, o.title
from soc_detailed_occupations o
where o.title ilike '%' || $1 || '%'
order by o.code
`
	rows, err := r.q.Query(ctx, sql, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowGroupOccupation
	for rows.Next() {
		var rr RowGroupOccupation
		if err := rows.Scan(&rr.MinorGroupCode, &rr.Code, &rr.Title); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
