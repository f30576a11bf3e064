package payroll

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour, min int) time.Time {
	return time.Date(2025, time.June, day, hour, min, 0, 0, time.UTC)
}

func TestSplitAndPrice(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		rate     Rate
		step     time.Duration
		expected Result
	}{
		{
			name:  "janela totalmente diurna",
			start: at(10, 8, 0),
			end:   at(10, 12, 0),
			rate:  DefaultRates(),
			step:  StepFine,
			expected: Result{
				DayHours:    4,
				DayAmount:   200,
				TotalAmount: 200,
			},
		},
		{
			name:  "janela totalmente noturna cruzando a meia-noite",
			start: at(10, 23, 0),
			end:   at(11, 1, 0),
			rate:  DefaultRates(),
			step:  StepFine,
			expected: Result{
				NightHours:  2,
				NightAmount: 150,
				TotalAmount: 150,
			},
		},
		{
			name:  "janela cruzando o limite das 22h",
			start: at(10, 21, 0),
			end:   at(10, 23, 0),
			rate:  Rate{Day: 10, Night: 20},
			step:  StepFine,
			expected: Result{
				DayHours:    1,
				NightHours:  1,
				DayAmount:   10,
				NightAmount: 20,
				TotalAmount: 30,
			},
		},
		{
			name:  "janela cruzando o limite das 6h",
			start: at(10, 5, 45),
			end:   at(10, 6, 15),
			rate:  DefaultRates(),
			step:  StepFine,
			expected: Result{
				DayHours:    0.25,
				NightHours:  0.25,
				DayAmount:   12.5,
				NightAmount: 18.75,
				TotalAmount: 31.25,
			},
		},
		{
			name:  "último passo menor que o intervalo",
			start: at(10, 8, 0),
			end:   at(10, 8, 10),
			rate:  DefaultRates(),
			step:  StepFine,
			expected: Result{
				DayHours:    0.17,
				DayAmount:   8.33,
				TotalAmount: 8.33,
			},
		},
		{
			name:     "janela de duração zero",
			start:    at(10, 8, 0),
			end:      at(10, 8, 0),
			rate:     DefaultRates(),
			step:     StepFine,
			expected: Result{},
		},
		{
			name:     "fim antes do início",
			start:    at(10, 12, 0),
			end:      at(10, 8, 0),
			rate:     DefaultRates(),
			step:     StepFine,
			expected: Result{},
		},
		{
			name:     "instantes zerados",
			start:    time.Time{},
			end:      time.Time{},
			rate:     DefaultRates(),
			step:     StepFine,
			expected: Result{},
		},
		{
			name:     "passo não positivo",
			start:    at(10, 8, 0),
			end:      at(10, 12, 0),
			rate:     DefaultRates(),
			step:     0,
			expected: Result{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SplitAndPrice(tc.start, tc.end, tc.rate, tc.step))
		})
	}
}

func TestSplitAndPriceNaNRate(t *testing.T) {
	res := SplitAndPrice(at(10, 8, 0), at(10, 12, 0), Rate{Day: math.NaN(), Night: 75}, StepFine)

	assert.True(t, res.Invalid)
	assert.Zero(t, res.DayHours)
	assert.Zero(t, res.TotalAmount)
}

func TestSplitAndPriceStepPrecision(t *testing.T) {
	// The same window priced at the two historical precisions. The coarse
	// step classifies the whole 21:30 hour as day, the fine step only the
	// half hour actually before 22:00.
	start, end := at(10, 21, 30), at(10, 23, 30)

	fine := SplitAndPrice(start, end, DefaultRates(), StepFine)
	require.Equal(t, 0.5, fine.DayHours)
	require.Equal(t, 1.5, fine.NightHours)
	require.Equal(t, 137.5, fine.TotalAmount)

	coarse := SplitAndPrice(start, end, DefaultRates(), StepCoarse)
	require.Equal(t, 1.0, coarse.DayHours)
	require.Equal(t, 1.0, coarse.NightHours)
	require.Equal(t, 125.0, coarse.TotalAmount)
}

func TestSplitAndPriceMonotonic(t *testing.T) {
	// Extending the window never lowers the total, no matter which band the
	// extra time lands in.
	start := at(10, 20, 0)
	previous := 0.0

	for _, end := range []time.Time{
		at(10, 20, 30), at(10, 21, 45), at(10, 22, 0), at(10, 23, 15), at(11, 5, 0), at(11, 8, 30),
	} {
		total := SplitAndPrice(start, end, DefaultRates(), StepFine).TotalAmount
		assert.GreaterOrEqual(t, total, previous, "janela até %s", end)
		previous = total
	}
}

func TestSplitAndPriceRateScaling(t *testing.T) {
	// Doubling both rates doubles every amount; the hour buckets stay put.
	start, end := at(10, 20, 0), at(11, 2, 30)

	base := SplitAndPrice(start, end, Rate{Day: 50, Night: 75}, StepFine)
	doubled := SplitAndPrice(start, end, Rate{Day: 100, Night: 150}, StepFine)

	assert.Equal(t, base.DayHours, doubled.DayHours)
	assert.Equal(t, base.NightHours, doubled.NightHours)
	assert.Equal(t, 2*base.DayAmount, doubled.DayAmount)
	assert.Equal(t, 2*base.NightAmount, doubled.NightAmount)
	assert.Equal(t, 2*base.TotalAmount, doubled.TotalAmount)
}

func TestSplitAndPricePartition(t *testing.T) {
	// Every minute of the window lands in exactly one band.
	testWindows := []struct {
		start time.Time
		end   time.Time
	}{
		{at(10, 8, 0), at(10, 20, 0)},
		{at(10, 4, 15), at(10, 7, 45)},
		{at(10, 20, 0), at(11, 9, 0)},
		{at(10, 0, 0), at(11, 0, 0)},
	}

	for _, w := range testWindows {
		res := SplitAndPrice(w.start, w.end, DefaultRates(), StepFine)
		assert.InDelta(t, w.end.Sub(w.start).Hours(), res.DayHours+res.NightHours, 0.011)
	}
}

func TestRateFor(t *testing.T) {
	day, night := 60.0, 90.0

	assert.Equal(t, DefaultRates(), RateFor(nil, nil, DefaultRates()))
	assert.Equal(t, Rate{Day: 60, Night: DefaultNightRate}, RateFor(&day, nil, DefaultRates()))
	assert.Equal(t, Rate{Day: 60, Night: 90}, RateFor(&day, &night, DefaultRates()))
}

func TestApplyMinimum(t *testing.T) {
	assert.Equal(t, 250.0, ApplyMinimum(100, 250))
	assert.Equal(t, 250.0, ApplyMinimum(250, 250))
	assert.Equal(t, 300.0, ApplyMinimum(300, 250))
}
