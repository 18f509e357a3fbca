// Package rank consolidates raw occupation matches into one ranked entry per
// code and applies sector-distribution boosts, filtering, ordering, and
// pagination. It is pure: all inputs arrive as values, nothing reaches for
// storage.
package rank

import (
	"math"
	"sort"
	"strings"
)

// base ranks by match site
const (
	basePrimary     = 1.0
	baseAlternative = 0.9
)

// MinSectorShare is the cutoff used by the sector filter
const MinSectorShare = 1.0

// RawMatch is one retrieval row before consolidation
type RawMatch struct {
	// Code is the occupation code this row matched
	Code string
	// Primary is true when the primary title matched, false for an
	// alternative-title-only match
	Primary bool
	// MatchedAlternatives are the alternative titles that matched, in
	// catalog order
	MatchedAlternatives []string
	// Quality multiplies the base rank; the exact stage always passes 1.0,
	// the fuzzy stage passes the inverted re-score
	Quality float64
}

// Entry is one consolidated result
type Entry struct {
	Code                string
	IsAlternativeMatch  bool
	MatchedAlternatives []string
	Score               float64
}

// Consolidate merges raw matches into at most one entry per code.
// A primary match anywhere wins over alternative-only matches for the same
// code, matched alternative titles accumulate order-preserving and deduped,
// and the score keeps the best base*quality seen.
func Consolidate(matches []RawMatch) []Entry {
	byCode := make(map[string]*Entry, len(matches))
	order := make([]string, 0, len(matches))

	for _, m := range matches {
		q := m.Quality
		if q <= 0 {
			q = 1.0
		}
		base := baseAlternative
		if m.Primary {
			base = basePrimary
		}
		score := base * q

		e, ok := byCode[m.Code]
		if !ok {
			e = &Entry{
				Code:               m.Code,
				IsAlternativeMatch: !m.Primary,
				Score:              score,
			}
			byCode[m.Code] = e
			order = append(order, m.Code)
		} else {
			if m.Primary {
				e.IsAlternativeMatch = false
			}
			if score > e.Score {
				e.Score = score
			}
		}
		e.MatchedAlternatives = appendUnique(e.MatchedAlternatives, m.MatchedAlternatives)
	}

	out := make([]Entry, 0, len(order))
	for _, code := range order {
		out = append(out, *byCode[code])
	}
	return out
}

// BoostFunc maps a sector-distribution percentage to a rank multiplier
type BoostFunc func(pct float64) float64

// Tiered is the canonical stepped boost
func Tiered(pct float64) float64 {
	switch {
	case pct >= 90:
		return 2.00
	case pct >= 75:
		return 1.75
	case pct >= 50:
		return 1.50
	case pct >= 25:
		return 1.25
	case pct >= 10:
		return 1.10
	case pct < 5:
		return 0.75
	default:
		return 1.00
	}
}

// Logarithmic is the alternate smooth boost
func Logarithmic(pct float64) float64 {
	b := 1 + math.Log10(pct+1)/math.Log10(101)
	if pct >= 10 {
		b *= 1.5
	}
	return b
}

// ByName selects a boost strategy; unknown names fall back to Tiered
func ByName(name string) BoostFunc {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "logarithmic", "log":
		return Logarithmic
	default:
		return Tiered
	}
}

// ApplySectorBoost multiplies scores by fn(pct) for codes that have a
// distribution row; codes absent from pctByCode are left untouched
func ApplySectorBoost(entries []Entry, pctByCode map[string]float64, fn BoostFunc) {
	if fn == nil {
		fn = Tiered
	}
	for i := range entries {
		if pct, ok := pctByCode[entries[i].Code]; ok {
			entries[i].Score *= fn(pct)
		}
	}
}

// FilterBySector drops entries whose distribution for the filter sector is
// below MinSectorShare; absent codes count as zero. showAll disables the drop.
func FilterBySector(entries []Entry, pctByCode map[string]float64, showAll bool) []Entry {
	if showAll {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if pctByCode[e.Code] >= MinSectorShare {
			out = append(out, e)
		}
	}
	return out
}

// Sort orders entries by score desc, primary matches before alternative-only,
// matched-alternative count desc, then code asc for determinism
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.IsAlternativeMatch != b.IsAlternativeMatch {
			return !a.IsAlternativeMatch
		}
		if la, lb := len(a.MatchedAlternatives), len(b.MatchedAlternatives); la != lb {
			return la > lb
		}
		return a.Code < b.Code
	})
}

// Paginate slices a sorted entry list
// page is 1-based; both arguments are assumed validated upstream
func Paginate(entries []Entry, page, pageSize int) (items []Entry, total, totalPages int) {
	total = len(entries)
	totalPages = Pages(total, pageSize)

	offset := (page - 1) * pageSize
	if offset >= total {
		return []Entry{}, total, totalPages
	}
	end := offset + pageSize
	if end > total {
		end = total
	}
	return entries[offset:end], total, totalPages
}

// Pages is ceil(total/pageSize)
func Pages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// appendUnique appends items from add not already present in dst, keeping order
func appendUnique(dst []string, add []string) []string {
	for _, s := range add {
		found := false
		for _, have := range dst {
			if have == s {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst
}
