// Package service contains the occupation search workflow
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"socsearch/internal/core/fuzzy"
	"socsearch/internal/core/querynorm"
	"socsearch/internal/core/rank"
	"socsearch/internal/modkit/repokit"
	perr "socsearch/internal/platform/errors"
	"socsearch/internal/services/api/search/domain"
	"socsearch/internal/services/api/search/repo"

	occdom "socsearch/internal/services/api/occupations/domain"
	secdom "socsearch/internal/services/api/sectors/domain"
)

// minExactCandidates gates the fallback to the fuzzy stage
const minExactCandidates = 5

// topIndustriesN caps the industries resolved per returned result
const topIndustriesN = 3

// Service defines the service contract for search
type Service interface{ domain.ServicePort }

// Options carries the collaborator ports and tuning for the search service
type Options struct {
	// Catalog provides the browse hierarchy for short queries
	Catalog occdom.ServicePort
	// Distribution provides sector share lookups for boosts and display
	Distribution secdom.DistributionPort
	// Boost names the sector boost strategy; empty selects the tiered default
	Boost string
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	catalog occdom.ServicePort
	dist    secdom.DistributionPort
	boost   rank.BoostFunc
}

// New creates a new search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("search.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	if opt.Catalog == nil {
		panic("search.Service requires the occupations catalog port")
	}
	if opt.Distribution == nil {
		panic("search.Service requires the sectors distribution port")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		catalog: opt.Catalog,
		dist:    opt.Distribution,
		boost:   rank.ByName(opt.Boost),
	}
}

// Search runs the full retrieval, re-scoring, consolidation, and ranking pipeline
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.Response, error) {
	in = in.Normalized()
	q := strings.TrimSpace(in.Q)

	if utf8.RuneCountInString(q) < 2 {
		return s.browse(ctx)
	}

	rows, err := s.Repo.Exact(ctx, q, repo.RetrievalCap)
	if err != nil {
		return domain.Response{}, perr.FromPostgres(err, "exact retrieval failed")
	}

	var raw []rank.RawMatch
	meta := make(map[string]repo.RowCandidate, len(rows))

	if len(rows) >= minExactCandidates {
		for _, row := range rows {
			meta[row.Code] = row
			raw = append(raw, exactMatch(q, row))
		}
	} else {
		// honor an expired caller deadline before paying for the fuzzy stage
		if err := ctx.Err(); err != nil {
			return domain.Response{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "deadline expired before fuzzy stage")
		}
		rows, err = s.Repo.Fuzzy(ctx, q, repo.RetrievalCap)
		if err != nil {
			return domain.Response{}, perr.FromPostgres(err, "fuzzy retrieval failed")
		}
		for _, row := range rows {
			res, ok := fuzzy.Accepted(q, fuzzy.Candidate{
				Title:             row.Title,
				AlternativeTitles: row.AlternativeTitles,
				Description:       row.Description,
			})
			if !ok {
				continue
			}
			meta[row.Code] = row
			raw = append(raw, rank.RawMatch{
				Code:                row.Code,
				Primary:             res.Best != fuzzy.FieldAlternative,
				MatchedAlternatives: res.MatchedAlternatives,
				Quality:             res.Quality(),
			})
		}
	}

	entries := rank.Consolidate(raw)

	var pct map[string]float64
	if in.Sector != "" {
		label := secdom.Label(in.Sector)
		codes := make([]string, 0, len(entries))
		for _, e := range entries {
			codes = append(codes, e.Code)
		}
		pct, err = s.dist.SharesFor(ctx, codes, label)
		if err != nil {
			return domain.Response{}, err
		}
		rank.ApplySectorBoost(entries, pct, s.boost)
		entries = rank.FilterBySector(entries, pct, in.ShowAll)
	}

	rank.Sort(entries)
	pageEntries, total, totalPages := rank.Paginate(entries, in.Page, in.PageSize)

	items := make([]domain.Result, 0, len(pageEntries))
	for _, e := range pageEntries {
		row := meta[e.Code]
		item := domain.Result{
			Code:                     e.Code,
			CanonicalTitle:           row.Title,
			Description:              row.Description,
			IsAlternativeMatch:       e.IsAlternativeMatch,
			MatchedAlternativeTitles: e.MatchedAlternatives,
			RankScore:                e.Score,
			MajorGroup:               occdom.GroupRef{Code: row.MajorGroupCode, Title: row.MajorGroupTitle},
			MinorGroup:               occdom.GroupRef{Code: row.MinorGroupCode, Title: row.MinorGroupTitle},
			TopIndustries:            []secdom.SectorShare{},
		}
		if share, ok := pct[e.Code]; ok {
			item.SectorDistributionForFilter = &share
		}
		top, err := s.dist.TopShares(ctx, e.Code, topIndustriesN)
		if err != nil {
			return domain.Response{}, err
		}
		if top != nil {
			item.TopIndustries = top
		}
		items = append(items, item)
	}

	return domain.Response{Results: &domain.ResultsPage{
		Items:       items,
		TotalCount:  total,
		CurrentPage: in.Page,
		TotalPages:  totalPages,
		Query:       q,
	}}, nil
}

// browse returns the group hierarchy shape used for sub-2-rune queries
func (s *Svc) browse(ctx context.Context) (domain.Response, error) {
	groups, err := s.catalog.Groups(ctx, "")
	if err != nil {
		return domain.Response{}, err
	}
	return domain.Response{Browse: &domain.BrowsePage{
		Items:       groups,
		TotalCount:  len(groups),
		CurrentPage: 1,
		TotalPages:  1,
		Query:       "",
	}}, nil
}

// exactMatch classifies how an exact-stage row matched the query
func exactMatch(q string, row repo.RowCandidate) rank.RawMatch {
	fq := querynorm.Fold(q)
	titleHit := strings.Contains(querynorm.Fold(row.Title), fq)

	var alts []string
	for _, alt := range row.AlternativeTitles {
		if querynorm.Fold(alt) == fq {
			alts = append(alts, alt)
		}
	}

	return rank.RawMatch{
		Code:                row.Code,
		Primary:             titleHit || len(alts) == 0, // full-text-only rows count as primary
		MatchedAlternatives: alts,
		Quality:             1.0,
	}
}
