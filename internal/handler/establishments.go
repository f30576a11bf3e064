package handler

import (
	"net/http"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func (h *Handler) GetAllEstablishments(w http.ResponseWriter, r *http.Request) {
	establishments, err := h.repository.GetAllEstablishments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "lista de estabelecimentos obtida com sucesso", establishments)
}

func (h *Handler) GetEstablishment(w http.ResponseWriter, r *http.Request) {
	e := r.Context().Value(EstablishmentCtx).(*domain.Establishment)
	h.successResponse(w, r, "estabelecimento obtido com sucesso", e)
}

func (h *Handler) CreateEstablishment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address" validate:"required"`
		City    string `json:"city" validate:"required"`
		Phone   string `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e := &domain.Establishment{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}

	if err := h.repository.CreateEstablishment(e); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "estabelecimento criado com sucesso", e)
}

func (h *Handler) UpdateEstablishment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		City    *string `json:"city"`
		Phone   *string `json:"phone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e := r.Context().Value(EstablishmentCtx).(*domain.Establishment)

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.City != nil {
		e.City = *req.City
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}

	if err := h.repository.UpdateEstablishment(e); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "estabelecimento atualizado com sucesso", e)
}

func (h *Handler) DeleteEstablishment(w http.ResponseWriter, r *http.Request) {
	e := r.Context().Value(EstablishmentCtx).(*domain.Establishment)

	if err := h.repository.DeleteEstablishment(e.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "estabelecimento removido com sucesso", nil)
}
