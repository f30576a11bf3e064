package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/utils"
)

func (h *Handler) GetUserSchedule(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	ws, err := h.repository.GetWeeklyScheduleByMashguiach(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "nenhuma escala fixa cadastrada", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "escala fixa obtida com sucesso", ws)
}

// ReplaceUserSchedule swaps the whole fixed job of a supervisor. The editor
// always sends the complete slot set; there is no partial patching.
func (h *Handler) ReplaceUserSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EstablishmentID int64 `json:"establishmentID" validate:"required"`
		Slots           []struct {
			Weekday       string  `json:"weekday" validate:"required"`
			TimeIn        *string `json:"timeIn"`
			TimeOut       *string `json:"timeOut"`
			IsDayOff      bool    `json:"isDayOff"`
			SundayOfMonth *int32  `json:"sundayOfMonth"`
		} `json:"slots" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if user.Role != domain.RoleMashguiach {
		h.errorResponse(w, r, "apenas mashguichim possuem escala fixa")
		return
	}

	ws := &domain.WeeklySchedule{
		MashguiachID:    user.ID,
		EstablishmentID: req.EstablishmentID,
		Slots:           make([]domain.DaySlot, 0, len(req.Slots)),
	}
	for _, slot := range req.Slots {
		ws.Slots = append(ws.Slots, domain.DaySlot{
			Weekday:       slot.Weekday,
			TimeIn:        slot.TimeIn,
			TimeOut:       slot.TimeOut,
			IsDayOff:      slot.IsDayOff,
			SundayOfMonth: slot.SundayOfMonth,
		})
	}

	if err := utils.ValidateWeeklySchedule(ws); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.ReplaceWeeklySchedule(ws); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "escala fixa atualizada com sucesso", ws)
}

func (h *Handler) DeleteUserSchedule(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if err := h.repository.DeleteWeeklySchedule(user.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "escala fixa removida com sucesso", nil)
}
