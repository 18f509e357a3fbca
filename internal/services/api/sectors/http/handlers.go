// Package http provides http transport for sector distributions
package http

import (
	stdhttp "net/http"

	"socsearch/internal/modkit/httpkit"
	"socsearch/internal/services/api/sectors/domain"
	svc "socsearch/internal/services/api/sectors/service"
)

// Register mounts distribution endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.TopInput](r, "/", h.top)
}

type handlers struct{ svc svc.Service }

// @Summary Top occupations for a sector by workforce share
// @Tags Sectors
// @Produce json
// @Param sector query string true "Sector label or bare NAICS code" example(21)
// @Success 200 {array} domain.TopOccupation "ok, empty when the sector has no rows"
// @Failure 400 {object} httpkit.Envelope "missing sector"
// @Router /occupations/top [get]
func (h *handlers) top(r *stdhttp.Request, in domain.TopInput) (any, error) {
	return h.svc.TopForSector(r.Context(), in.Sector)
}
