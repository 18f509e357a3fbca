// Package domain holds search pipeline types shared by http and service contracts
package domain

import (
	occdom "socsearch/internal/services/api/occupations/domain"
	secdom "socsearch/internal/services/api/sectors/domain"
)

// Result is one consolidated occupation entry in the final ranked list
type Result struct {
	Code                        string               `json:"code"`
	CanonicalTitle              string               `json:"canonicalTitle"`
	Description                 string               `json:"description,omitempty"`
	IsAlternativeMatch          bool                 `json:"isAlternativeMatch"`
	MatchedAlternativeTitles    []string             `json:"matchedAlternativeTitles,omitempty"`
	RankScore                   float64              `json:"rankScore"`
	SectorDistributionForFilter *float64             `json:"sectorDistributionForFilter,omitempty"`
	TopIndustries               []secdom.SectorShare `json:"topIndustries"`
	MajorGroup                  occdom.GroupRef      `json:"majorGroup"`
	MinorGroup                  occdom.GroupRef      `json:"minorGroup"`
}

// ResultsPage is the paginated search response
type ResultsPage struct {
	Items       []Result `json:"items"`
	TotalCount  int      `json:"totalCount"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	Query       string   `json:"query"`
}

// BrowsePage is the short-query response carrying the group hierarchy
type BrowsePage struct {
	Items       []occdom.BrowseGroup `json:"items"`
	TotalCount  int                  `json:"totalCount"`
	CurrentPage int                  `json:"currentPage"`
	TotalPages  int                  `json:"totalPages"`
	Query       string               `json:"query"`
}

// Response is the union of the two search response shapes
// exactly one of the fields is set
type Response struct {
	Results *ResultsPage
	Browse  *BrowsePage
}
