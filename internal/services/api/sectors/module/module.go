// Package module wires sector distributions into the API using modkit
package module

import (
	"net/http"

	modkit "socsearch/internal/modkit"
	"socsearch/internal/modkit/httpkit"
	str "socsearch/internal/platform/strings"
	sectorshttp "socsearch/internal/services/api/sectors/http"
	sectorsrepo "socsearch/internal/services/api/sectors/repo"
	sectorssvc "socsearch/internal/services/api/sectors/service"
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

	svc sectorssvc.Service
}

// New constructs a sectors module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("sectors"), modkit.WithPrefix("/occupations/top")}, opts...)...)

	repo := sectorsrepo.NewPG()
	svc := sectorssvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptDistributionPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		sectorshttp.Register(r, m.svc)
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
