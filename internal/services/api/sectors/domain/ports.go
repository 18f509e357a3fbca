package domain

import "context"

// ServicePort defines the service contract for sector distributions
type ServicePort interface {
	// TopForSector returns the highest-distribution occupations for a sector
	TopForSector(ctx context.Context, sector string) ([]TopOccupation, error)
}

// DistributionPort is the cross-module lookup surface consumed by search
type DistributionPort interface {
	// PercentageFor returns the share for one (code, sector) pair, 0 when absent
	PercentageFor(ctx context.Context, code, sectorLabel string) (float64, error)
	// SharesFor returns shares for many codes at once; absent codes are omitted
	SharesFor(ctx context.Context, codes []string, sectorLabel string) (map[string]float64, error)
	// TopShares returns up to n highest sector rows for one occupation
	TopShares(ctx context.Context, code string, n int) ([]SectorShare, error)
}
