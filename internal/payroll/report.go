package payroll

import (
	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

// ServicePay is one service line of a monthly report. Hours is the raw split
// result, Total the amount actually owed for the line (floor applied on the
// payroll side, transport fee added on both sides).
type ServicePay struct {
	ServiceID    int64   `json:"serviceID"`
	Hours        Result  `json:"hours"`
	TransportFee float64 `json:"transportFee"`
	Total        float64 `json:"total"`
}

// MonthlyReport aggregates the service lines of one supervisor (payroll) or
// one establishment (billing) over a month.
type MonthlyReport struct {
	Lines       []ServicePay `json:"lines"`
	DayHours    float64      `json:"dayHours"`
	NightHours  float64      `json:"nightHours"`
	TotalAmount float64      `json:"totalAmount"`
}

// BuildMonthlyPayroll prices every service at 15-minute precision, raises
// each line to the minimum-payment floor and adds the flat transport fee.
// The transport fee is additive and never subject to day/night splitting.
// A degenerate service contributes a zero line instead of failing the batch.
func BuildMonthlyPayroll(services []*domain.Service, defaults Rate, minimum float64) *MonthlyReport {
	report := &MonthlyReport{Lines: make([]ServicePay, 0, len(services))}

	for _, svc := range services {
		res := SplitAndPrice(svc.ArriveTime, svc.EndTime, RateFor(svc.DayRate, svc.NightRate, defaults), StepFine)

		line := ServicePay{
			ServiceID:    svc.ID,
			Hours:        res,
			TransportFee: svc.TransportFee,
			Total:        round2(ApplyMinimum(res.TotalAmount, minimum) + svc.TransportFee),
		}

		report.Lines = append(report.Lines, line)
		report.DayHours += res.DayHours
		report.NightHours += res.NightHours
		report.TotalAmount += line.Total
	}

	report.DayHours = round2(report.DayHours)
	report.NightHours = round2(report.NightHours)
	report.TotalAmount = round2(report.TotalAmount)

	return report
}

// BuildMonthlyBilling is the establishment-facing counterpart: same
// 15-minute precision, same transport fee, but no minimum-payment floor.
func BuildMonthlyBilling(services []*domain.Service, defaults Rate) *MonthlyReport {
	report := &MonthlyReport{Lines: make([]ServicePay, 0, len(services))}

	for _, svc := range services {
		res := SplitAndPrice(svc.ArriveTime, svc.EndTime, RateFor(svc.DayRate, svc.NightRate, defaults), StepFine)

		line := ServicePay{
			ServiceID:    svc.ID,
			Hours:        res,
			TransportFee: svc.TransportFee,
			Total:        round2(res.TotalAmount + svc.TransportFee),
		}

		report.Lines = append(report.Lines, line)
		report.DayHours += res.DayHours
		report.NightHours += res.NightHours
		report.TotalAmount += line.Total
	}

	report.DayHours = round2(report.DayHours)
	report.NightHours = round2(report.NightHours)
	report.TotalAmount = round2(report.TotalAmount)

	return report
}

// DashboardTotals is the coarse aggregate shown on the dashboard. It walks
// windows in 1-hour steps, which this path has always used; do not unify it
// with the report paths, the coarser step changes the numbers.
func DashboardTotals(services []*domain.Service, defaults Rate) Result {
	var agg Result

	for _, svc := range services {
		res := SplitAndPrice(svc.ArriveTime, svc.EndTime, RateFor(svc.DayRate, svc.NightRate, defaults), StepCoarse)
		agg.DayHours += res.DayHours
		agg.NightHours += res.NightHours
		agg.DayAmount += res.DayAmount
		agg.NightAmount += res.NightAmount
		agg.TotalAmount += res.TotalAmount
	}

	agg.DayHours = round2(agg.DayHours)
	agg.NightHours = round2(agg.NightHours)
	agg.DayAmount = round2(agg.DayAmount)
	agg.NightAmount = round2(agg.NightAmount)
	agg.TotalAmount = round2(agg.TotalAmount)

	return agg
}
