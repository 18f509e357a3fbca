// Package module wires occupation search into the API using modkit
package module

import (
	"net/http"

	modkit "socsearch/internal/modkit"
	"socsearch/internal/modkit/httpkit"
	str "socsearch/internal/platform/strings"

	searchhttp "socsearch/internal/services/api/search/http"
	searchrepo "socsearch/internal/services/api/search/repo"
	searchsvc "socsearch/internal/services/api/search/service"

	occdom "socsearch/internal/services/api/occupations/domain"
	secdom "socsearch/internal/services/api/sectors/domain"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc searchsvc.Service
}

// Ports declares the injected collaborator ports this module requires
type Ports struct {
	Catalog      occdom.ServicePort
	Distribution secdom.DistributionPort
}

// New constructs a search module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("search"),
		modkit.WithPrefix("/occupations/search"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Catalog == nil {
		panic("search module requires the occupations catalog port")
	}
	if injected.Distribution == nil {
		panic("search module requires the sectors distribution port")
	}

	svc := searchsvc.New(deps.PG, searchrepo.NewPG(), searchsvc.Options{
		Catalog:      injected.Catalog,
		Distribution: injected.Distribution,
		Boost:        deps.Cfg.MayString("SEARCH_BOOST", ""),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSearchPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		searchhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
