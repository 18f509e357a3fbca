// Package api provides the HTTP API for the application
package api

import (
	"socsearch/internal/platform/config"
	"socsearch/internal/platform/logger"
	phttp "socsearch/internal/platform/net/http"
	"socsearch/internal/platform/store"

	"socsearch/internal/modkit"
	"socsearch/internal/modkit/httpkit"
	"socsearch/internal/modkit/module"
	"socsearch/internal/modkit/swaggerkit"

	metamod "socsearch/internal/services/api/meta/module"
	occdom "socsearch/internal/services/api/occupations/domain"
	occmod "socsearch/internal/services/api/occupations/module"
	secdom "socsearch/internal/services/api/sectors/domain"
	sectorsmod "socsearch/internal/services/api/sectors/module"
	searchmod "socsearch/internal/services/api/search/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the catalog and distribution modules first and extract
	// the ports the search module depends on
	occupations := occmod.New(deps)
	sectors := sectorsmod.New(deps)

	catalog := module.MustPortsOf[occdom.ServicePort](occupations)
	distribution := module.MustPortsOf[secdom.DistributionPort](sectors)

	search := searchmod.New(
		deps,
		modkit.WithPorts(searchmod.Ports{
			Catalog:      catalog,
			Distribution: distribution,
		}),
	)

	// route precedence: /occupations/search and /occupations/top are static
	// children, so they win over the catalog's /{code} wildcard
	mods := []module.Module{
		metamod.New(deps),
		occupations,
		sectors,
		search,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
