package domain

// TopInput selects the sector for the top-occupations list
type TopInput struct {
	Sector string `json:"sector" query:"sector" validate:"required,max=40" example:"21"`
}
