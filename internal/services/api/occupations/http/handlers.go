// Package http provides http transport for the occupation catalog
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"socsearch/internal/modkit/httpkit"
	"socsearch/internal/platform/net/http/bind"
	"socsearch/internal/services/api/occupations/domain"
	svc "socsearch/internal/services/api/occupations/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.GroupsInput](r, "/groups", h.groups)
	r.Get("/{code}", httpkit.Call(h.byCode))
}

type handlers struct{ svc svc.Service }

// @Summary Browsable major/minor group hierarchy
// @Tags Occupations
// @Produce json
// @Param q query string false "Filter nested occupations by title substring"
// @Success 200 {array} domain.BrowseGroup "ok"
// @Router /occupations/groups [get]
func (h *handlers) groups(r *stdhttp.Request, in domain.GroupsInput) (any, error) {
	return h.svc.Groups(r.Context(), in.Q)
}

// @Summary Full occupation record with group hierarchy
// @Tags Occupations
// @Produce json
// @Param code path string true "Occupation code" example(53-7051.00)
// @Success 200 {object} domain.Occupation "ok"
// @Failure 404 {object} httpkit.Envelope "unknown code"
// @Router /occupations/{code} [get]
func (h *handlers) byCode(r *stdhttp.Request) (any, error) {
	in := domain.CodeInput{Code: chi.URLParam(r, "code")}
	if err := bind.ValidateStruct(in); err != nil {
		return nil, err
	}
	return h.svc.ByCode(r.Context(), in.Code)
}
