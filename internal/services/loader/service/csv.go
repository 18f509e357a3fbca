package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"socsearch/internal/core/querynorm"
	ptime "socsearch/internal/platform/time"
	"socsearch/internal/services/loader/domain"
)

// Sources holds the three raw catalog files
type Sources struct {
	Occupations     io.Reader // onetsoc_code, title, description
	AlternateTitles io.Reader // onetsoc_code, alternate_title, ...
	Distribution    io.Reader // onetsoc_code, sector_label, n, percent, date_updated
}

// ParseSnapshot reads the source files and assembles a complete catalog.
// O*NET ships one row per specialty code; rows sharing a SOC code are
// consolidated and the extra titles folded into the alternatives set.
func ParseSnapshot(src Sources) (domain.Snapshot, error) {
	occs, err := readRecords(src.Occupations, "occupation data")
	if err != nil {
		return domain.Snapshot{}, err
	}
	alts, err := readRecords(src.AlternateTitles, "alternate titles")
	if err != nil {
		return domain.Snapshot{}, err
	}
	dist, err := readRecords(src.Distribution, "sector distribution")
	if err != nil {
		return domain.Snapshot{}, err
	}

	altsByCode := map[string]map[string]bool{}
	for _, rec := range alts {
		code := rec["onetsoc_code"]
		title := strings.TrimSpace(rec["alternate_title"])
		if code == "" || title == "" {
			continue
		}
		if altsByCode[code] == nil {
			altsByCode[code] = map[string]bool{}
		}
		altsByCode[code][title] = true
	}

	byCode := map[string]*domain.Occupation{}
	var order []string
	for _, rec := range occs {
		code := strings.TrimSpace(rec["onetsoc_code"])
		if code == "" {
			continue
		}
		o, ok := byCode[code]
		if !ok {
			o = &domain.Occupation{
				Code:        code,
				MinorCode:   minorCodeOf(code),
				Title:       strings.TrimSpace(rec["title"]),
				Description: strings.TrimSpace(rec["description"]),
			}
			byCode[code] = o
			order = append(order, code)
			continue
		}
		// duplicate specialty row: keep the first title as primary
		if t := strings.TrimSpace(rec["title"]); t != "" && t != o.Title {
			o.AlternativeTitles = appendUnique(o.AlternativeTitles, t)
		}
	}

	sort.Strings(order)
	majorSeen := map[string]bool{}
	minorSeen := map[string]bool{}
	snap := domain.Snapshot{}
	for _, code := range order {
		o := byCode[code]
		for t := range altsByCode[code] {
			if t != o.Title {
				o.AlternativeTitles = appendUnique(o.AlternativeTitles, t)
			}
		}
		sort.Strings(o.AlternativeTitles)
		o.SearchableText = searchableText(*o)

		major := majorCodeOf(code)
		if !majorSeen[major] {
			majorSeen[major] = true
			title := majorGroupTitle(major)
			snap.Majors = append(snap.Majors, domain.MajorGroup{
				Code:        major,
				Title:       title,
				Description: fmt.Sprintf("All occupations in the %s field.", strings.ToLower(title)),
			})
		}
		if !minorSeen[o.MinorCode] {
			minorSeen[o.MinorCode] = true
			title := minorGroupTitle(o.MinorCode)
			snap.Minors = append(snap.Minors, domain.MinorGroup{
				Code:        o.MinorCode,
				MajorCode:   major,
				Title:       title,
				Description: fmt.Sprintf("Occupations related to %s.", strings.ToLower(title)),
			})
		}
		snap.Occupations = append(snap.Occupations, *o)
	}

	for _, rec := range dist {
		code := strings.TrimSpace(rec["onetsoc_code"])
		sector := strings.TrimSpace(rec["sector_label"])
		if code == "" || sector == "" {
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(rec["percent"]), 64)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("sector distribution: bad percent %q for %s: %w", rec["percent"], code, err)
		}
		n, _ := strconv.Atoi(strings.TrimSpace(rec["n"]))
		snap.Distribution = append(snap.Distribution, domain.DistributionRow{
			SOCCode:     code,
			SectorLabel: sector,
			SampleSize:  n,
			Percentage:  pct,
			DateUpdated: parseDate(rec["date_updated"]),
		})
	}

	return snap, nil
}

// readRecords loads a headered CSV into per-row column maps
func readRecords(r io.Reader, what string) ([]map[string]string, error) {
	if r == nil {
		return nil, fmt.Errorf("%s: no source reader", what)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", what, err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	var out []map[string]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: read row: %w", what, err)
		}
		rec := make(map[string]string, len(header))
		for i, v := range row {
			if i < len(header) {
				rec[header[i]] = v
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// majorCodeOf returns the two-digit major group for a detailed code
func majorCodeOf(code string) string {
	if len(code) < 2 {
		return code
	}
	return code[:2]
}

// minorCodeOf maps a detailed code like 15-1251.00 to its minor group 15-1200
func minorCodeOf(code string) string {
	if len(code) < 5 || code[2] != '-' {
		return code
	}
	return code[:5] + "00"
}

// searchableText is the folded haystack the search indexes are built over
func searchableText(o domain.Occupation) string {
	parts := make([]string, 0, 2+len(o.AlternativeTitles))
	parts = append(parts, o.Title)
	parts = append(parts, o.AlternativeTitles...)
	parts = append(parts, o.Description)
	return querynorm.Fold(strings.Join(parts, " "))
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return ptime.Ptr(t)
		}
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
