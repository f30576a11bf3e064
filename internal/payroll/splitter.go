package payroll

import (
	"log/slog"
	"math"
	"time"
)

// Business defaults carried over from the paper process: services without
// explicit rates are priced at 50/75 per hour and the monthly payroll report
// guarantees 250 per service. Keep these in sync with the config defaults.
const (
	DefaultDayRate   = 50.0
	DefaultNightRate = 75.0
	MinimumPayment   = 250.0
)

// The day band is wall-clock local time: [06:00, 22:00) is day, the rest is
// night.
const (
	dayBandStartHour = 6
	dayBandEndHour   = 22
)

// Step sizes of the two historical call paths. The payroll report walks
// windows in 15-minute steps, the dashboard aggregate in 1-hour steps. The
// two paths intentionally keep different precision so reported totals stay
// identical to what the operation has always seen.
const (
	StepFine   = 15 * time.Minute
	StepCoarse = time.Hour
)

// Rate holds the hourly rates of the two bands.
type Rate struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
}

// DefaultRates returns the configured-by-policy fallback rates.
func DefaultRates() Rate {
	return Rate{Day: DefaultDayRate, Night: DefaultNightRate}
}

// RateFor resolves the effective rates of a service: explicit values win,
// absent values fall back to the given defaults.
func RateFor(dayRate, nightRate *float64, defaults Rate) Rate {
	r := defaults
	if dayRate != nil {
		r.Day = *dayRate
	}
	if nightRate != nil {
		r.Night = *nightRate
	}
	return r
}

// Result is the output of SplitAndPrice. Invalid is set when the inputs were
// unusable (NaN rates); callers that care can distinguish that from a
// legitimately zero-length window.
type Result struct {
	DayHours    float64 `json:"dayHours"`
	NightHours  float64 `json:"nightHours"`
	DayAmount   float64 `json:"dayAmount"`
	NightAmount float64 `json:"nightAmount"`
	TotalAmount float64 `json:"totalAmount"`
	Invalid     bool    `json:"-"`
}

// SplitAndPrice walks the window [start, end) in fixed-size steps, classifies
// each step by the wall-clock hour of its start instant and accumulates the
// step's duration (clamped at end) into the day or night bucket. A step that
// straddles a band boundary belongs entirely to the band active at its start.
//
// Degenerate windows (end <= start, zero instants) and non-positive steps
// yield a zero result, never an error: report loops must not abort over one
// bad record. NaN rates yield a zero result with Invalid set.
//
// The minimum-payment floor is deliberately NOT applied here; billing callers
// must see the raw total. See ApplyMinimum.
func SplitAndPrice(start, end time.Time, rate Rate, step time.Duration) Result {
	if math.IsNaN(rate.Day) || math.IsNaN(rate.Night) {
		slog.Warn("valor de tarifa inválido (NaN), serviço ignorado",
			"dayRate", rate.Day, "nightRate", rate.Night)
		return Result{Invalid: true}
	}

	if start.IsZero() || end.IsZero() {
		slog.Warn("janela de serviço com instante inválido",
			"start", start, "end", end)
		return Result{}
	}

	if !end.After(start) || step <= 0 {
		return Result{}
	}

	var dayHours, nightHours float64

	for cursor := start; cursor.Before(end); cursor = cursor.Add(step) {
		d := step
		if remaining := end.Sub(cursor); remaining < d {
			d = remaining
		}

		if hour := cursor.Hour(); hour >= dayBandStartHour && hour < dayBandEndHour {
			dayHours += d.Hours()
		} else {
			nightHours += d.Hours()
		}
	}

	return Result{
		DayHours:    round2(dayHours),
		NightHours:  round2(nightHours),
		DayAmount:   round2(dayHours * rate.Day),
		NightAmount: round2(nightHours * rate.Night),
		TotalAmount: round2(dayHours*rate.Day + nightHours*rate.Night),
	}
}

// ApplyMinimum raises a computed total to the minimum-payment floor. Only the
// payroll-report aggregation applies it; billing estimates never do.
func ApplyMinimum(total, minimum float64) float64 {
	if total < minimum {
		return minimum
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
