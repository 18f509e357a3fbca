// Command socsearch-load replaces the SOC catalog tables from the O*NET
// source files in a single transaction
package main

import (
	"context"
	"flag"
	"os"

	"socsearch/internal/platform/config"
	"socsearch/internal/platform/logger"
	"socsearch/internal/platform/store"

	"socsearch/internal/services/loader/repo"
	"socsearch/internal/services/loader/service"
)

func main() {
	var (
		fOccupations = flag.String("occupations", "data/occupation_data.csv", "occupation data CSV (onetsoc_code, title, description)")
		fAlternates  = flag.String("alternates", "data/alternate_titles.csv", "alternate titles CSV (onetsoc_code, alternate_title)")
		fSectors     = flag.String("sectors", "data/occupation_sector_distribution.csv", "sector distribution CSV (onetsoc_code, sector_label, n, percent, date_updated)")
	)
	flag.Parse()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	occF, err := os.Open(*fOccupations)
	if err != nil {
		l.Panic().Err(err).Msg("open occupation data")
	}
	defer occF.Close()
	altF, err := os.Open(*fAlternates)
	if err != nil {
		l.Panic().Err(err).Msg("open alternate titles")
	}
	defer altF.Close()
	secF, err := os.Open(*fSectors)
	if err != nil {
		l.Panic().Err(err).Msg("open sector distribution")
	}
	defer secF.Close()

	snap, err := service.ParseSnapshot(service.Sources{
		Occupations:     occF,
		AlternateTitles: altF,
		Distribution:    secF,
	})
	if err != nil {
		l.Panic().Err(err).Msg("parse catalog sources")
	}

	ctx := context.Background()
	st, err := store.Open(
		ctx,
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	svc := service.New(st.PG, repo.NewPG())
	stats, err := svc.Load(ctx, snap)
	if err != nil {
		l.Panic().Err(err).Msg("catalog load failed")
	}

	l.Info().
		Str("batch_id", stats.BatchID).
		Int("occupations", stats.Occupations).
		Int("distribution_rows", stats.Distribution).
		Dur("elapsed", stats.Elapsed).
		Msg("done")
}
