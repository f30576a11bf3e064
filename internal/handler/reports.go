package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/payroll"
)

// monthRange resolves the year/month query parameters into a half-open
// range; defaults to the current month.
func monthRange(r *http.Request) (time.Time, time.Time, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			return time.Time{}, time.Time{}, false
		}
		month = parsed
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(0, 1, 0), true
}

// writePayrollReport builds the monthly payroll of one supervisor: 15-minute
// precision split, the minimum-payment floor per service, and the flat
// transport fee. The raw splitter output never includes the floor; it is a
// payroll-only guarantee applied here.
func (h *Handler) writePayrollReport(w http.ResponseWriter, r *http.Request, mashguiachID int64) {
	from, to, ok := monthRange(r)
	if !ok {
		h.errorResponse(w, r, "período inválido")
		return
	}

	services, err := h.repository.GetServicesByMashguiachInRange(mashguiachID, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report := payroll.BuildMonthlyPayroll(services, h.defaultRates(), h.config.Payroll.MinimumPayment)

	h.successResponse(w, r, "relatório de pagamento gerado com sucesso", report)
}

func (h *Handler) GetUserPayroll(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)
	h.writePayrollReport(w, r, user.ID)
}

// GetEstablishmentBilling is the billing counterpart: same precision, no
// minimum-payment floor.
func (h *Handler) GetEstablishmentBilling(w http.ResponseWriter, r *http.Request) {
	establishment := r.Context().Value(EstablishmentCtx).(*domain.Establishment)

	from, to, ok := monthRange(r)
	if !ok {
		h.errorResponse(w, r, "período inválido")
		return
	}

	services, err := h.repository.GetServicesByEstablishmentInRange(establishment.ID, from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report := payroll.BuildMonthlyBilling(services, h.defaultRates())

	h.successResponse(w, r, "relatório de cobrança gerado com sucesso", report)
}

// GetDashboard aggregates the month at 1-hour precision, the step this path
// has always used.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	from, to, ok := monthRange(r)
	if !ok {
		h.errorResponse(w, r, "período inválido")
		return
	}

	services, err := h.repository.GetServicesInRange(from, to)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	totals := payroll.DashboardTotals(services, h.defaultRates())

	h.successResponse(w, r, "resumo do mês gerado com sucesso", struct {
		Services int            `json:"services"`
		Totals   payroll.Result `json:"totals"`
	}{
		Services: len(services),
		Totals:   totals,
	})
}
