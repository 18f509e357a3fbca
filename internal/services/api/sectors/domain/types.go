// Package domain holds sector distribution types shared by http and service contracts
package domain

import "strings"

// SectorShare is one occupation's workforce share within a sector
type SectorShare struct {
	SectorLabel string  `json:"sector"`
	Percentage  float64 `json:"percentage"`
}

// TopOccupation is one entry of the top-occupations-by-sector list
type TopOccupation struct {
	Code        string  `json:"code"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Percentage  float64 `json:"percentage"`
}

// Label maps a raw industry code to the label scheme used by distribution rows.
// Bare numeric codes get the NAICS prefix; anything else passes through verbatim.
func Label(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return raw
		}
	}
	return "NAICS" + raw
}
