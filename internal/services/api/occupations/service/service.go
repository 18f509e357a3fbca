// Package service contains occupation catalog workflows
package service

import (
	"context"
	"strings"

	"socsearch/internal/modkit/repokit"
	perr "socsearch/internal/platform/errors"
	"socsearch/internal/services/api/occupations/domain"
	"socsearch/internal/services/api/occupations/repo"
)

// Service defines the service contract for the catalog
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("occupations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("occupations.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ByCode returns the full occupation record for one code
func (s *Svc) ByCode(ctx context.Context, code string) (domain.Occupation, error) {
	row, err := s.Repo.ByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return domain.Occupation{}, perr.FromPostgres(err, "occupation lookup failed")
	}
	if row == nil {
		return domain.Occupation{}, perr.NotFoundf("occupation %s not found", code)
	}
	return domain.Occupation{
		Code:              row.Code,
		Title:             row.Title,
		Description:       row.Description,
		AlternativeTitles: row.AlternativeTitles,
		MinorGroup:        domain.GroupRef{Code: row.MinorGroupCode, Title: row.MinorGroupTitle},
		MajorGroup:        domain.GroupRef{Code: row.MajorGroupCode, Title: row.MajorGroupTitle},
	}, nil
}

// Groups returns the browsable hierarchy, nesting matching occupations when q is set
func (s *Svc) Groups(ctx context.Context, q string) ([]domain.BrowseGroup, error) {
	rows, err := s.Repo.Groups(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "group hierarchy query failed")
	}

	var byMinor map[string][]domain.BrowseOccupation
	if q = strings.TrimSpace(q); q != "" {
		occs, err := s.Repo.OccupationsByTitle(ctx, q)
		if err != nil {
			return nil, perr.FromPostgres(err, "occupation filter query failed")
		}
		byMinor = make(map[string][]domain.BrowseOccupation, len(occs))
		for _, o := range occs {
			byMinor[o.MinorGroupCode] = append(byMinor[o.MinorGroupCode], domain.BrowseOccupation{
				Code:  o.Code,
				Title: o.Title,
			})
		}
	}

	out := make([]domain.BrowseGroup, 0, 24)
	idx := map[string]int{}
	for _, r := range rows {
		i, ok := idx[r.MajorCode]
		if !ok {
			out = append(out, domain.BrowseGroup{
				Code:        r.MajorCode,
				Title:       r.MajorTitle,
				Description: r.MajorDescription,
			})
			i = len(out) - 1
			idx[r.MajorCode] = i
		}
		out[i].MinorGroups = append(out[i].MinorGroups, domain.BrowseMinorGroup{
			Code:        r.MinorCode,
			Title:       r.MinorTitle,
			Description: r.MinorDescription,
			Occupations: byMinor[r.MinorCode],
		})
	}
	return out, nil
}
