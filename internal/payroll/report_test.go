package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func TestBuildMonthlyPayroll(t *testing.T) {
	services := []*domain.Service{
		{
			// 2 day hours at the default rate: raw 100, raised to the
			// 250 floor, plus 30 of transport.
			ID:           1,
			ArriveTime:   at(10, 8, 0),
			EndTime:      at(10, 10, 0),
			TransportFee: 30,
		},
		{
			// 8 day hours: raw 400, already above the floor.
			ID:         2,
			ArriveTime: at(11, 9, 0),
			EndTime:    at(11, 17, 0),
		},
	}

	report := BuildMonthlyPayroll(services, DefaultRates(), MinimumPayment)

	require.Len(t, report.Lines, 2)

	assert.Equal(t, int64(1), report.Lines[0].ServiceID)
	assert.Equal(t, 100.0, report.Lines[0].Hours.TotalAmount)
	assert.Equal(t, 280.0, report.Lines[0].Total)

	assert.Equal(t, 400.0, report.Lines[1].Hours.TotalAmount)
	assert.Equal(t, 400.0, report.Lines[1].Total)

	assert.Equal(t, 10.0, report.DayHours)
	assert.Zero(t, report.NightHours)
	assert.Equal(t, 680.0, report.TotalAmount)
}

func TestBuildMonthlyPayrollExplicitRates(t *testing.T) {
	day, night := 100.0, 150.0
	services := []*domain.Service{
		{
			ID:         7,
			ArriveTime: at(10, 20, 0),
			EndTime:    at(10, 23, 0),
			DayRate:    &day,
			NightRate:  &night,
		},
	}

	report := BuildMonthlyPayroll(services, DefaultRates(), MinimumPayment)

	require.Len(t, report.Lines, 1)
	// 2 day hours at 100 plus 1 night hour at 150.
	assert.Equal(t, 350.0, report.Lines[0].Hours.TotalAmount)
	assert.Equal(t, 350.0, report.Lines[0].Total)
}

func TestBuildMonthlyBillingHasNoFloor(t *testing.T) {
	services := []*domain.Service{
		{
			ID:           1,
			ArriveTime:   at(10, 8, 0),
			EndTime:      at(10, 10, 0),
			TransportFee: 30,
		},
	}

	report := BuildMonthlyBilling(services, DefaultRates())

	require.Len(t, report.Lines, 1)
	assert.Equal(t, 130.0, report.Lines[0].Total)
	assert.Equal(t, 130.0, report.TotalAmount)
}

func TestBuildMonthlyBillingDegenerateService(t *testing.T) {
	// A record with a broken window contributes a zero line instead of
	// failing the whole report.
	services := []*domain.Service{
		{ID: 1, ArriveTime: at(10, 12, 0), EndTime: at(10, 8, 0)},
		{ID: 2, ArriveTime: at(10, 8, 0), EndTime: at(10, 9, 0)},
	}

	report := BuildMonthlyBilling(services, DefaultRates())

	require.Len(t, report.Lines, 2)
	assert.Zero(t, report.Lines[0].Total)
	assert.Equal(t, 50.0, report.Lines[1].Total)
	assert.Equal(t, 50.0, report.TotalAmount)
}

func TestDashboardTotals(t *testing.T) {
	services := []*domain.Service{
		{ID: 1, ArriveTime: at(10, 21, 30), EndTime: at(10, 23, 30)},
		{ID: 2, ArriveTime: at(11, 8, 0), EndTime: at(11, 10, 0)},
	}

	totals := DashboardTotals(services, DefaultRates())

	// The dashboard walks in 1-hour steps, so the 21:30 hour counts as day.
	assert.Equal(t, 3.0, totals.DayHours)
	assert.Equal(t, 1.0, totals.NightHours)
	assert.Equal(t, 150.0, totals.DayAmount)
	assert.Equal(t, 75.0, totals.NightAmount)
	assert.Equal(t, 225.0, totals.TotalAmount)
}
