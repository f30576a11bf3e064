package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/availability"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/payroll"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/utils"
)

func (h *Handler) defaultRates() payroll.Rate {
	return payroll.Rate{
		Day:   h.config.Payroll.DayRate,
		Night: h.config.Payroll.NightRate,
	}
}

// priceService recomputes the persisted split fields of a service from its
// current window and rates. The report path always uses the fine step.
func (h *Handler) priceService(svc *domain.Service) {
	res := payroll.SplitAndPrice(svc.ArriveTime, svc.EndTime,
		payroll.RateFor(svc.DayRate, svc.NightRate, h.defaultRates()), payroll.StepFine)

	svc.DayHours = res.DayHours
	svc.NightHours = res.NightHours
	svc.DayAmount = res.DayAmount
	svc.NightAmount = res.NightAmount
	svc.TotalAmount = res.TotalAmount
}

// checkAssignment runs the conflict resolver for the chosen mashguiach
// before an assignment is finalized. excludeServiceID keeps a service's own
// stored window from blocking its edit.
func (h *Handler) checkAssignment(mashguiachID int64, start, end time.Time, excludeServiceID int64) (bool, error) {
	ws, err := h.repository.GetWeeklyScheduleByMashguiach(mashguiachID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	if !availability.IsAvailable(start, end, ws) {
		return false, nil
	}

	overlapping, err := h.repository.GetAssignmentsOverlapping(start, end)
	if err != nil {
		return false, err
	}

	for _, other := range overlapping {
		if other.ID == excludeServiceID {
			continue
		}
		if other.MashguiachID != nil && *other.MashguiachID == mashguiachID {
			return false, nil
		}
	}

	return true, nil
}

func (h *Handler) notifyAssignment(svc *domain.Service, event *domain.Event) error {
	mashguiach, err := h.repository.GetUserByID(*svc.MashguiachID)
	if err != nil {
		return err
	}

	establishment, err := h.repository.GetEstablishmentByID(event.EstablishmentID)
	if err != nil {
		return err
	}

	return h.publishMail(domain.MailMessage{
		Type: "assignment_notice",
		To:   mashguiach.Email,
		Data: domain.AssignmentNoticeMailData{
			FullName:      mashguiach.FullName,
			Establishment: establishment.Name,
			EventTitle:    event.Title,
			ArriveTime:    svc.ArriveTime.Format("02/01/2006 15:04"),
			EndTime:       svc.EndTime.Format("02/01/2006 15:04"),
		},
	})
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MashguiachID *int64    `json:"mashguiachID"`
		ArriveTime   time.Time `json:"arriveTime" validate:"required"`
		EndTime      time.Time `json:"endTime" validate:"required"`
		DayRate      *float64  `json:"dayRate" validate:"omitempty,gte=0"`
		NightRate    *float64  `json:"nightRate" validate:"omitempty,gte=0"`
		TransportFee float64   `json:"transportFee" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateServiceWindow(req.ArriveTime, req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := r.Context().Value(EventCtx).(*domain.Event)

	svc := &domain.Service{
		EventID:      event.ID,
		MashguiachID: req.MashguiachID,
		ArriveTime:   req.ArriveTime,
		EndTime:      req.EndTime,
		DayRate:      req.DayRate,
		NightRate:    req.NightRate,
		TransportFee: req.TransportFee,
	}

	if svc.MashguiachID != nil {
		free, err := h.checkAssignment(*svc.MashguiachID, svc.ArriveTime, svc.EndTime, 0)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !free {
			h.errorResponse(w, r, "o mashguiach escolhido não está disponível nesse horário")
			return
		}
	}

	h.priceService(svc)

	if err := h.repository.CreateService(svc); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if svc.MashguiachID != nil {
		if err := h.notifyAssignment(svc, event); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "serviço criado com sucesso", svc)
}

func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	svc := r.Context().Value(ServiceCtx).(*domain.Service)
	h.successResponse(w, r, "serviço obtido com sucesso", svc)
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MashguiachID *int64     `json:"mashguiachID"`
		Unassign     bool       `json:"unassign"`
		ArriveTime   *time.Time `json:"arriveTime"`
		EndTime      *time.Time `json:"endTime"`
		DayRate      *float64   `json:"dayRate" validate:"omitempty,gte=0"`
		NightRate    *float64   `json:"nightRate" validate:"omitempty,gte=0"`
		TransportFee *float64   `json:"transportFee" validate:"omitempty,gte=0"`
		IsPaid       *bool      `json:"isPaid"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	svc := r.Context().Value(ServiceCtx).(*domain.Service)
	previousMashguiach := svc.MashguiachID

	if req.ArriveTime != nil {
		svc.ArriveTime = *req.ArriveTime
	}
	if req.EndTime != nil {
		svc.EndTime = *req.EndTime
	}
	if req.DayRate != nil {
		svc.DayRate = req.DayRate
	}
	if req.NightRate != nil {
		svc.NightRate = req.NightRate
	}
	if req.TransportFee != nil {
		svc.TransportFee = *req.TransportFee
	}
	if req.IsPaid != nil {
		svc.IsPaid = *req.IsPaid
	}

	// The caller decides between "assign this mashguiach" and "unassign";
	// there is no sentinel id for the unassigned state.
	switch {
	case req.Unassign:
		svc.MashguiachID = nil
	case req.MashguiachID != nil:
		svc.MashguiachID = req.MashguiachID
	}

	if err := utils.ValidateServiceWindow(svc.ArriveTime, svc.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if svc.MashguiachID != nil {
		free, err := h.checkAssignment(*svc.MashguiachID, svc.ArriveTime, svc.EndTime, svc.ID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !free {
			h.errorResponse(w, r, "o mashguiach escolhido não está disponível nesse horário")
			return
		}
	}

	h.priceService(svc)

	if err := h.repository.UpdateService(svc); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "o serviço foi alterado por outra pessoa, tente novamente")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	newlyAssigned := svc.MashguiachID != nil &&
		(previousMashguiach == nil || *previousMashguiach != *svc.MashguiachID)
	if newlyAssigned {
		event, err := h.repository.GetEventByID(svc.EventID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if err := h.notifyAssignment(svc, event); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "serviço atualizado com sucesso", svc)
}

func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	svc := r.Context().Value(ServiceCtx).(*domain.Service)

	if err := h.repository.DeleteService(svc.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "serviço removido com sucesso", nil)
}
