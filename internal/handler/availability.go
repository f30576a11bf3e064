package handler

import (
	"net/http"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/availability"
)

// GetAvailableMashguichim filters the active roster against a candidate
// window: first the fixed weekly schedules, then the already accepted
// services that overlap the window. The response preserves roster order so
// the selection control is stable between calls.
func (h *Handler) GetAvailableMashguichim(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		h.errorResponse(w, r, "parâmetro start inválido")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		h.errorResponse(w, r, "parâmetro end inválido")
		return
	}
	if !end.After(start) {
		h.errorResponse(w, r, "a janela informada é inválida")
		return
	}

	pool, err := h.repository.GetAllMashguichim()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedules, err := h.repository.GetAllWeeklySchedules()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	overlapping, err := h.repository.GetAssignmentsOverlapping(start, end)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	assignments := make([]availability.Assignment, 0, len(overlapping))
	for _, svc := range overlapping {
		assignments = append(assignments, availability.Assignment{
			MashguiachID: *svc.MashguiachID,
			Start:        svc.ArriveTime,
			End:          svc.EndTime,
		})
	}

	free := availability.Filter(start, end, pool, schedules, assignments)

	h.successResponse(w, r, "mashguichim disponíveis obtidos com sucesso", free)
}
