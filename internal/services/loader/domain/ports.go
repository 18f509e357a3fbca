package domain

import "context"

// RunnerPort is the public port exposed by the loader
type RunnerPort interface {
	Load(ctx context.Context, snap Snapshot) (LoadStats, error)
}

// StorageRepo is the storage repository interface
// all calls run inside the single replace transaction
type StorageRepo interface {
	// DeleteAll clears the four catalog tables in FK order
	DeleteAll(ctx context.Context) error

	InsertMajorGroups(ctx context.Context, rows []MajorGroup) (int, error)
	InsertMinorGroups(ctx context.Context, rows []MinorGroup) (int, error)
	InsertOccupations(ctx context.Context, rows []Occupation) (int, error)
	InsertDistribution(ctx context.Context, rows []DistributionRow) (int, error)
}
