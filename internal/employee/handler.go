package employee

import (
	"context"
	"net/http"

	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]*Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	Search(ctx context.Context, term string) ([]*Employee, error)
	Register(ctx context.Context, dto RegisterDTO) (*Employee, error)
	Update(ctx context.Context, id int64, dto UpdateEmployeeDTO) error
	Delete(ctx context.Context, id int64) error
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

// Register handles POST /employees/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	employee, err := h.Service.Register(ctx, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employee.ToRegisterResponse())
}

// GetEmployees handles GET /employees
func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Context(r)
	defer cancel()

	employees, err := h.Service.List(ctx)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(employees))
}

// GetEmployee handles GET /employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	employee, err := h.Service.GetByID(ctx, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employee.ToResponse())
}

// SearchEmployees handles GET /employees/search?searchTerm=
func (h *Handler) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Context(r)
	defer cancel()

	employees, err := h.Service.Search(ctx, r.URL.Query().Get("searchTerm"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToSearchResponse(employees))
}

// UpdateEmployee handles PUT /employees/{id}
func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto UpdateEmployeeDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	if err := h.Service.Update(ctx, id, dto); err != nil {
		h.Logger.Warn("UpdateEmployee: service error", "error", err, "employee_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteNoContent(w)
}

// DeleteEmployee handles DELETE /employees/{id}
func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	if err := h.Service.Delete(ctx, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteNoContent(w)
}

// PublicRoutes are reachable without a token.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/register", h.Register)
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetEmployees)
	r.Get("/search", h.SearchEmployees)
	r.Get("/{id}", h.GetEmployee)
	r.Put("/{id}", h.UpdateEmployee)
	r.Delete("/{id}", h.DeleteEmployee)
}
