// Package repo provides Postgres storage for the catalog loader
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"socsearch/internal/modkit/repokit"
	"socsearch/internal/services/loader/domain"
)

// PG constructs StorageRepo implementations bound to a queryer
type PG struct{}

// NewPG returns a PG binder
func NewPG() PG { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.StorageRepo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

// DeleteAll clears the catalog tables, children before parents
func (r *queries) DeleteAll(ctx context.Context) error {
	for _, table := range []string{
		"soc_sector_distribution",
		"soc_detailed_occupations",
		"soc_minor_groups",
		"soc_major_groups",
	} {
		if _, err := r.q.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (r *queries) InsertMajorGroups(ctx context.Context, rows []domain.MajorGroup) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	codes := make([]string, 0, len(rows))
	titles := make([]string, 0, len(rows))
	descs := make([]string, 0, len(rows))
	for _, g := range rows {
		codes = append(codes, g.Code)
		titles = append(titles, g.Title)
		descs = append(descs, g.Description)
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO soc_major_groups (code, title, description)
		SELECT * FROM UNNEST($1::text[], $2::text[], $3::text[])
	`, codes, titles, descs)
	if err != nil {
		return 0, fmt.Errorf("insert major groups: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *queries) InsertMinorGroups(ctx context.Context, rows []domain.MinorGroup) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	codes := make([]string, 0, len(rows))
	majors := make([]string, 0, len(rows))
	titles := make([]string, 0, len(rows))
	descs := make([]string, 0, len(rows))
	for _, g := range rows {
		codes = append(codes, g.Code)
		majors = append(majors, g.MajorCode)
		titles = append(titles, g.Title)
		descs = append(descs, g.Description)
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO soc_minor_groups (code, major_group_code, title, description)
		SELECT * FROM UNNEST($1::text[], $2::text[], $3::text[], $4::text[])
	`, codes, majors, titles, descs)
	if err != nil {
		return 0, fmt.Errorf("insert minor groups: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *queries) InsertOccupations(ctx context.Context, rows []domain.Occupation) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	codes := make([]string, 0, len(rows))
	minors := make([]string, 0, len(rows))
	titles := make([]string, 0, len(rows))
	descs := make([]string, 0, len(rows))
	alts := make([]string, 0, len(rows))
	searchable := make([]string, 0, len(rows))
	for _, o := range rows {
		a := o.AlternativeTitles
		if a == nil {
			a = []string{}
		}
		buf, err := json.Marshal(a)
		if err != nil {
			return 0, fmt.Errorf("marshal alternative titles for %s: %w", o.Code, err)
		}
		codes = append(codes, o.Code)
		minors = append(minors, o.MinorCode)
		titles = append(titles, o.Title)
		descs = append(descs, o.Description)
		alts = append(alts, string(buf))
		searchable = append(searchable, o.SearchableText)
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO soc_detailed_occupations (
			code, minor_group_code, title, description, alternative_titles, searchable_text
		)
		SELECT * FROM UNNEST(
			$1::text[], $2::text[], $3::text[], $4::text[], $5::jsonb[], $6::text[]
		)
	`, codes, minors, titles, descs, alts, searchable)
	if err != nil {
		return 0, fmt.Errorf("insert occupations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *queries) InsertDistribution(ctx context.Context, rows []domain.DistributionRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	codes := make([]string, 0, len(rows))
	sectors := make([]string, 0, len(rows))
	samples := make([]int, 0, len(rows))
	pcts := make([]float64, 0, len(rows))
	dates := make([]*time.Time, 0, len(rows))
	for _, d := range rows {
		codes = append(codes, d.SOCCode)
		sectors = append(sectors, d.SectorLabel)
		samples = append(samples, d.SampleSize)
		pcts = append(pcts, d.Percentage)
		dates = append(dates, d.DateUpdated)
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO soc_sector_distribution (
			soc_code, sector_label, sample_size, percentage, date_updated
		)
		SELECT * FROM UNNEST(
			$1::text[], $2::text[], $3::int[], $4::numeric[], $5::date[]
		)
	`, codes, sectors, samples, pcts, dates)
	if err != nil {
		return 0, fmt.Errorf("insert sector distribution: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
