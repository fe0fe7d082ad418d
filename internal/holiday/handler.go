package holiday

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]*Holiday, error)
	ListByEmployee(ctx context.Context, nom, prenom string) ([]*Holiday, error)
	GetByID(ctx context.Context, id int64) (*Holiday, error)
	Create(ctx context.Context, dto HolidayDTO) (*Holiday, error)
	Update(ctx context.Context, id int64, dto HolidayDTO) error
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

// GetHolidays handles GET /holidays
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Context(r)
	defer cancel()

	holidays, err := h.Service.List(ctx)
	if err != nil {
		h.Logger.Error("GetHolidays: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(holidays))
}

// GetHoliday handles GET /holidays/{id}
func (h *Handler) GetHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	holiday, err := h.Service.GetByID(ctx, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, holiday.ToResponse())
}

// CreateHoliday handles POST /holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var dto HolidayDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.Logger.Warn("CreateHoliday: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	holiday, err := h.Service.Create(ctx, dto)
	if err != nil {
		h.Logger.Warn("CreateHoliday: service error", "error", err, "nom", dto.Nom, "prenom", dto.Prenom)
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(holiday.ID, 10))
	h.WriteJSON(w, http.StatusCreated, holiday.ToResponse())
}

// UpdateHoliday handles PUT /holidays/{id}
func (h *Handler) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := h.ParseID(r, "id")
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	var dto HolidayDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.Logger.Warn("UpdateHoliday: invalid request body", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	ctx, cancel := h.Context(r)
	defer cancel()

	if err := h.Service.Update(ctx, id, dto); err != nil {
		h.Logger.Warn("UpdateHoliday: service error", "error", err, "holiday_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteNoContent(w)
}

// DeleteHoliday handles DELETE /holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
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

// GetEmployeeHolidays handles GET /holidays/employee/{nom}/{prenom}
func (h *Handler) GetEmployeeHolidays(w http.ResponseWriter, r *http.Request) {
	nom := chi.URLParam(r, "nom")
	prenom := chi.URLParam(r, "prenom")

	ctx, cancel := h.Context(r)
	defer cancel()

	holidays, err := h.Service.ListByEmployee(ctx, nom, prenom)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, ToResponses(holidays))
}

// Routes mounts the holiday endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.GetHolidays)
	r.Post("/", h.CreateHoliday)
	r.Get("/employee/{nom}/{prenom}", h.GetEmployeeHolidays)
	r.Get("/{id}", h.GetHoliday)
	r.Put("/{id}", h.UpdateHoliday)
	r.Delete("/{id}", h.DeleteHoliday)
}
