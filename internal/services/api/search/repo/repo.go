// Package repo provides postgres access for the search retrieval stages
package repo

import (
	"context"
	"encoding/json"

	"socsearch/internal/modkit/repokit"
)

// RetrievalCap bounds both retrieval stages
const RetrievalCap = 100

// Repo defines the repository contract for candidate retrieval
type Repo interface {
	// Exact retrieves candidates by title substring, exact alternative-title
	// element, or full-text match
	Exact(ctx context.Context, q string, limit int) ([]RowCandidate, error)
	// Fuzzy retrieves candidates by trigram similarity above the floor,
	// best-first
	Fuzzy(ctx context.Context, q string, limit int) ([]RowCandidate, error)
}

// RowCandidate is one retrieval row joined to its hierarchy
type RowCandidate struct {
	Code              string
	Title             string
	Description       string
	AlternativeTitles []string
	MinorGroupCode    string
	MinorGroupTitle   string
	MajorGroupCode    string
	MajorGroupTitle   string
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

const candidateColumns = `
o.code, o.title, coalesce(o.description, ''),
coalesce(o.alternative_titles, '[]'::jsonb),
mi.code, mi.title, ma.code, ma.title
`

func (r *queries) Exact(ctx context.Context, q string, limit int) ([]RowCandidate, error) {
	if limit <= 0 || limit > RetrievalCap {
		limit = RetrievalCap
	}
	const sql = `
select ` + candidateColumns + `
from soc_detailed_occupations o
join soc_minor_groups mi on mi.code = o.minor_group_code
join soc_major_groups ma on ma.code = mi.major_group_code
where o.title ilike '%' || $1 || '%'
or exists (
	select 1 from jsonb_array_elements_text(o.alternative_titles) alt
	where lower(alt) = lower($1)
)
or to_tsvector('english', o.searchable_text) @@ plainto_tsquery('english', $1)
order by o.code
limit $2
`
	rows, err := r.q.Query(ctx, sql, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *queries) Fuzzy(ctx context.Context, q string, limit int) ([]RowCandidate, error) {
	if limit <= 0 || limit > RetrievalCap {
		limit = RetrievalCap
	}
	const sql = `
select ` + candidateColumns + `
from soc_detailed_occupations o
join soc_minor_groups mi on mi.code = o.minor_group_code
join soc_major_groups ma on ma.code = mi.major_group_code
where similarity(o.searchable_text, $1) > 0.1
order by similarity(o.searchable_text, $1) desc, o.code
limit $2
`
	rows, err := r.q.Query(ctx, sql, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows repokit.Rows) ([]RowCandidate, error) {
	var out []RowCandidate
	for rows.Next() {
		var rr RowCandidate
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
		out = append(out, rr)
	}
	return out, rows.Err()
}
