// Package domain defines the catalog loader types and ports
package domain

import "time"

// MajorGroup is one two-digit SOC major group row
type MajorGroup struct {
	Code        string
	Title       string
	Description string
}

// MinorGroup is one SOC minor group row under a major group
type MinorGroup struct {
	Code        string
	MajorCode   string
	Title       string
	Description string
}

// Occupation is one detailed occupation row with its consolidated titles
type Occupation struct {
	Code              string
	MinorCode         string
	Title             string
	Description       string
	AlternativeTitles []string
	SearchableText    string
}

// DistributionRow is one (occupation, sector) share observation
type DistributionRow struct {
	SOCCode     string
	SectorLabel string
	SampleSize  int
	Percentage  float64
	DateUpdated *time.Time
}

// Snapshot is a complete catalog ready for a wholesale replace
type Snapshot struct {
	Majors       []MajorGroup
	Minors       []MinorGroup
	Occupations  []Occupation
	Distribution []DistributionRow
}

// LoadStats summarizes one load run
type LoadStats struct {
	BatchID      string
	Majors       int
	Minors       int
	Occupations  int
	Distribution int
	Elapsed      time.Duration
}
