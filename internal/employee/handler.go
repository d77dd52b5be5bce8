package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/hr-dashboard/internal/transport"
)

type ServiceAPI interface {
	ListEmployees() EmployeesResponse
	FilteredEmployees() EmployeesResponse
	BookmarkedEmployees() EmployeesResponse
	GetEmployee(id int64) (*EmployeeDetailResponse, error)
	CreateEmployee(dto CreateEmployeeDTO) (*Employee, error)
	PromoteEmployee(id int64) (*Employee, error)
	ToggleBookmark(id int64) BookmarkResponse
	Departments() DepartmentsResponse
	Filters() FiltersResponse
	SetSearchQuery(dto SearchQueryDTO) FiltersResponse
	SetSelectedDepartments(dto DepartmentsFilterDTO) FiltersResponse
	SetSelectedRatings(dto RatingsFilterDTO) (FiltersResponse, error)
	Status() StatusResponse
	Refetch(ctx context.Context) (StatusResponse, error)
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

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.ListEmployees())
}

func (h *Handler) FilteredEmployees(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.FilteredEmployees())
}

func (h *Handler) BookmarkedEmployees(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.BookmarkedEmployees())
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Status())
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.ParseIDParam(r, "id")
	if appErr != nil {
		h.Logger.Warn("GetEmployee: invalid employee id")
		h.WriteAppError(w, appErr)
		return
	}

	detail, err := h.Service.GetEmployee(id)
	if err != nil {
		h.Logger.Info("GetEmployee: employee not found", "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", appErr)
		h.WriteAppError(w, appErr)
		return
	}

	created, err := h.Service.CreateEmployee(dto)
	if err != nil {
		h.Logger.Error("CreateEmployee: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateEmployee: employee created successfully",
		"employee_id", created.ID,
		"department", created.Department)

	h.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) PromoteEmployee(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.ParseIDParam(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	promoted, err := h.Service.PromoteEmployee(id)
	if err != nil {
		h.Logger.Info("PromoteEmployee: employee not found", "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, promoted)
}

func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id, appErr := h.ParseIDParam(r, "id")
	if appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	h.WriteJSON(w, http.StatusOK, h.Service.ToggleBookmark(id))
}

func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Departments())
}

func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Filters())
}

func (h *Handler) SetSearchQuery(w http.ResponseWriter, r *http.Request) {
	var dto SearchQueryDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Service.SetSearchQuery(dto))
}

func (h *Handler) SetSelectedDepartments(w http.ResponseWriter, r *http.Request) {
	var dto DepartmentsFilterDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	h.WriteJSON(w, http.StatusOK, h.Service.SetSelectedDepartments(dto))
}

func (h *Handler) SetSelectedRatings(w http.ResponseWriter, r *http.Request) {
	var dto RatingsFilterDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	filters, err := h.Service.SetSelectedRatings(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, filters)
}

func (h *Handler) Refetch(w http.ResponseWriter, r *http.Request) {
	status, err := h.Service.Refetch(r.Context())
	if err != nil {
		h.Logger.Error("Refetch: failed to reload roster", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Refetch: roster reloaded", "total", status.Total)
	h.WriteJSON(w, http.StatusOK, status)
}
