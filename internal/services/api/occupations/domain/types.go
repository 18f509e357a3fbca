// Package domain holds occupation catalog types shared by http and service contracts
package domain

// GroupRef is a denormalized classification group reference for display
type GroupRef struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Occupation is one standardized occupation record with its group hierarchy
type Occupation struct {
	Code              string   `json:"code" example:"53-7051.00"`
	Title             string   `json:"title" example:"Industrial Truck and Tractor Operators"`
	Description       string   `json:"description,omitempty"`
	AlternativeTitles []string `json:"alternativeTitles,omitempty"`
	MinorGroup        GroupRef `json:"minorGroup"`
	MajorGroup        GroupRef `json:"majorGroup"`
}

// BrowseOccupation is the compact occupation form nested under a minor group
type BrowseOccupation struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// BrowseMinorGroup is a minor group with optional nested occupations
type BrowseMinorGroup struct {
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Occupations []BrowseOccupation `json:"occupations,omitempty"`
}

// BrowseGroup is a major group with its nested minor groups
type BrowseGroup struct {
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	MinorGroups []BrowseMinorGroup `json:"minorGroups"`
}
