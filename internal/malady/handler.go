package malady

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]*Malady, error)
	ListByEmployee(ctx context.Context, nom, prenom string) ([]*Malady, error)
	ListByRole(ctx context.Context, role string) ([]*Malady, error)
	GetByID(ctx context.Context, id int64) (*Malady, error)
	Create(ctx context.Context, dto MaladyDTO) (*Malady, error)
	Update(ctx context.Context, id int64, dto MaladyDTO) error
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

// GetMaladies handles GET /maladies
func (h *Handler) GetMaladies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Context(r)
	defer cancel()

	maladies, err := h.Service.List(ctx)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(maladies))
}

// GetMalady handles GET /maladies/{id}
func (h *Handler) GetMalady(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	malady, err := h.Service.GetByID(ctx, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, malady.ToResponse())
}

// CreateMalady handles POST /maladies
func (h *Handler) CreateMalady(w http.ResponseWriter, r *http.Request) {
	var dto MaladyDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.Logger.Warn("CreateMalady: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	malady, err := h.Service.Create(ctx, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(malady.ID, 10))
	h.WriteJSON(w, http.StatusCreated, malady.ToResponse())
}

// UpdateMalady handles PUT /maladies/{id}
func (h *Handler) UpdateMalady(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto MaladyDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	if err := h.Service.Update(ctx, id, dto); err != nil {
		h.Logger.Warn("UpdateMalady: service error", "error", err, "malady_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteNoContent(w)
}

// DeleteMalady handles DELETE /maladies/{id}
func (h *Handler) DeleteMalady(w http.ResponseWriter, r *http.Request) {
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

// GetEmployeeMaladies handles GET /maladies/employee/{nom}/{prenom}
func (h *Handler) GetEmployeeMaladies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Context(r)
	defer cancel()

	maladies, err := h.Service.ListByEmployee(ctx, chi.URLParam(r, "nom"), chi.URLParam(r, "prenom"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(maladies))
}

// GetMaladiesByRole handles GET /maladies/role/{role}
func (h *Handler) GetMaladiesByRole(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Context(r)
	defer cancel()

	maladies, err := h.Service.ListByRole(ctx, chi.URLParam(r, "role"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(maladies))
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetMaladies)
	r.Post("/", h.CreateMalady)
	r.Get("/employee/{nom}/{prenom}", h.GetEmployeeMaladies)
	r.Get("/role/{role}", h.GetMaladiesByRole)
	r.Get("/{id}", h.GetMalady)
	r.Put("/{id}", h.UpdateMalady)
	r.Delete("/{id}", h.DeleteMalady)
}
