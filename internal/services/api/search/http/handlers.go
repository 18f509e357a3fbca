// Package http provides http transport for occupation search
package http

import (
	stdhttp "net/http"

	"socsearch/internal/modkit/httpkit"
	"socsearch/internal/services/api/search/domain"
	svc "socsearch/internal/services/api/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/", h.search)
}

type handlers struct{ svc svc.Service }

// @Summary Free-text occupation search with sector-aware ranking
// @Tags Search
// @Produce json
// @Param q query string false "Free text; fewer than 2 characters returns the browse hierarchy"
// @Param sector query string false "Sector label or bare NAICS code" example(21)
// @Param show_all query bool false "Keep results below the sector share cutoff"
// @Param page query int false "1-based page" default(1)
// @Param page_size query int false "Page size 1..50" default(20)
// @Success 200 {object} domain.ResultsPage "ok"
// @Failure 400 {object} httpkit.Envelope "invalid paging or sector input"
// @Router /occupations/search [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	out, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	if out.Browse != nil {
		return out.Browse, nil
	}
	return out.Results, nil
}
