package analytics

import (
	"net/http"

	"github.com/frahmantamala/hr-dashboard/internal/transport"
)

type ServiceAPI interface {
	Overview() OverviewResponse
	Departments() DepartmentsResponse
	Ratings() RatingsResponse
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Overview())
}

func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Departments())
}

func (h *Handler) Ratings(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Ratings())
}
