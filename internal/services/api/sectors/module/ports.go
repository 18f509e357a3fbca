package module

import (
	"context"

	secdom "socsearch/internal/services/api/sectors/domain"
	sectorssvc "socsearch/internal/services/api/sectors/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptDistributionPort adapts the sectors service to the distribution port
type adaptDistributionPort struct{ svc sectorssvc.Service }

// PercentageFor implements the domain DistributionPort interface
func (a adaptDistributionPort) PercentageFor(ctx context.Context, code, sectorLabel string) (float64, error) {
	return a.svc.PercentageFor(ctx, code, sectorLabel)
}

// SharesFor implements the domain DistributionPort interface
func (a adaptDistributionPort) SharesFor(ctx context.Context, codes []string, sectorLabel string) (map[string]float64, error) {
	return a.svc.SharesFor(ctx, codes, sectorLabel)
}

// TopShares implements the domain DistributionPort interface
func (a adaptDistributionPort) TopShares(ctx context.Context, code string, n int) ([]secdom.SectorShare, error) {
	return a.svc.TopShares(ctx, code, n)
}
