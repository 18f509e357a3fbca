package domain

import "context"

// ServicePort defines the service contract for the occupation catalog
type ServicePort interface {
	// ByCode returns the full record for one occupation code
	ByCode(ctx context.Context, code string) (Occupation, error)
	// Groups returns the browsable major/minor hierarchy, optionally
	// nesting occupations whose title contains q
	Groups(ctx context.Context, q string) ([]BrowseGroup, error)
}
