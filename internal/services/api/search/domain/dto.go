package domain

// SearchInput is the query-string input for occupation search
type SearchInput struct {
	Q        string `json:"q,omitempty" query:"q" validate:"omitempty,max=200" example:"forklift operator"`
	Sector   string `json:"sector,omitempty" query:"sector" validate:"omitempty,max=40" example:"21"`
	ShowAll  bool   `json:"show_all,omitempty" query:"show_all"`
	Page     int    `json:"page,omitempty" query:"page" validate:"omitempty,min=1"`
	PageSize int    `json:"page_size,omitempty" query:"page_size" validate:"omitempty,min=1,max=50"`
}

// Defaults for pagination
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Normalized returns a copy with pagination defaults applied
func (in SearchInput) Normalized() SearchInput {
	if in.Page < 1 {
		in.Page = DefaultPage
	}
	if in.PageSize < 1 {
		in.PageSize = DefaultPageSize
	}
	return in
}
