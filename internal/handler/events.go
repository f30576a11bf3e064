package handler

import (
	"net/http"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func (h *Handler) GetAllEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.repository.GetAllEvents()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "lista de eventos obtida com sucesso", events)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EstablishmentID int64     `json:"establishmentID" validate:"required"`
		Title           string    `json:"title" validate:"required"`
		Date            time.Time `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := &domain.Event{
		EstablishmentID: req.EstablishmentID,
		Title:           req.Title,
		Date:            req.Date,
	}

	if err := h.repository.CreateEvent(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "evento criado com sucesso", event)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	services, err := h.repository.GetServicesByEvent(event.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "evento obtido com sucesso", struct {
		Event    *domain.Event     `json:"event"`
		Services []*domain.Service `json:"services"`
	}{
		Event:    event,
		Services: services,
	})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	if err := h.repository.DeleteEvent(event.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "evento removido com sucesso", nil)
}
