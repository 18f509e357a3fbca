package module

import (
	"context"

	occdom "socsearch/internal/services/api/occupations/domain"
	occsvc "socsearch/internal/services/api/occupations/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCatalogPort adapts the catalog service to the domain port interface
type adaptCatalogPort struct{ svc occsvc.Service }

// ByCode implements the domain ServicePort interface
func (a adaptCatalogPort) ByCode(ctx context.Context, code string) (occdom.Occupation, error) {
	return a.svc.ByCode(ctx, code)
}

// Groups implements the domain ServicePort interface
func (a adaptCatalogPort) Groups(ctx context.Context, q string) ([]occdom.BrowseGroup, error) {
	return a.svc.Groups(ctx, q)
}
