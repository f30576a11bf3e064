package availability

import (
	"log/slog"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

// Assignment is an explicit, date-bound busy interval of a mashguiach (an
// already accepted event service). It is checked on top of the weekly
// schedule when filtering candidates.
type Assignment struct {
	MashguiachID int64
	Start        time.Time
	End          time.Time
}

const minutesPerDay = 24 * 60

// IsAvailable reports whether the fixed weekly schedule leaves the mashguiach
// free for the window [start, end). The policy fails open: no schedule, a
// day-off slot, missing times or unparseable times all count as free, so
// incomplete data never blocks a legitimate assignment.
func IsAvailable(start, end time.Time, sched *domain.WeeklySchedule) bool {
	if sched == nil {
		return true
	}

	slot := slotForWeekday(sched, start.Weekday().String())
	if slot == nil {
		return true
	}

	if slot.IsDayOff && dayOffApplies(slot, start) {
		return true
	}

	if slot.TimeIn == nil || slot.TimeOut == nil {
		return true
	}

	slotIn, err := parseClockMinutes(*slot.TimeIn)
	if err != nil {
		slog.Warn("horário de entrada da escala fixa inválido, ignorando conflito",
			"scheduleID", sched.ID, "weekday", slot.Weekday, "timeIn", *slot.TimeIn)
		return true
	}
	slotOut, err := parseClockMinutes(*slot.TimeOut)
	if err != nil {
		slog.Warn("horário de saída da escala fixa inválido, ignorando conflito",
			"scheduleID", sched.ID, "weekday", slot.Weekday, "timeOut", *slot.TimeOut)
		return true
	}

	// A time-out of 00:00 means end of day, not a zero-length shift.
	if slotOut == 0 {
		slotOut = minutesPerDay
	}

	// Minutes since midnight; a window running past midnight wraps its end
	// into the next day on purpose, only the slot of the start weekday is
	// checked.
	winStart := start.Hour()*60 + start.Minute()
	winEnd := end.Hour()*60 + end.Minute()
	if winEnd == 0 {
		winEnd = minutesPerDay
	}

	return !overlapsMinutes(winStart, winEnd, slotIn, slotOut)
}

// Filter returns the members of pool that are free for [start, end), first
// against their weekly schedules, then against explicit date-bound
// assignments. The result is a stable subsequence of pool.
func Filter(start, end time.Time, pool []*domain.User, schedules map[int64]*domain.WeeklySchedule, assignments []Assignment) []*domain.User {
	free := make([]*domain.User, 0, len(pool))

	for _, m := range pool {
		if !IsAvailable(start, end, schedules[m.ID]) {
			continue
		}
		if hasAssignmentConflict(start, end, m.ID, assignments) {
			continue
		}
		free = append(free, m)
	}

	return free
}

func hasAssignmentConflict(start, end time.Time, mashguiachID int64, assignments []Assignment) bool {
	for _, a := range assignments {
		if a.MashguiachID != mashguiachID {
			continue
		}
		if start.Before(a.End) && end.After(a.Start) {
			return true
		}
	}
	return false
}

func slotForWeekday(sched *domain.WeeklySchedule, weekday string) *domain.DaySlot {
	for i := range sched.Slots {
		if sched.Slots[i].Weekday == weekday {
			return &sched.Slots[i]
		}
	}
	return nil
}

// dayOffApplies handles the Nth-Sunday rule: a Sunday slot carrying a
// SundayOfMonth selector is only off on that occurrence of Sunday in the
// month. Every other day-off slot applies unconditionally.
func dayOffApplies(slot *domain.DaySlot, start time.Time) bool {
	if slot.Weekday != time.Sunday.String() || slot.SundayOfMonth == nil {
		return true
	}
	occurrence := int32((start.Day()-1)/7 + 1)
	return occurrence == *slot.SundayOfMonth
}

// overlapsMinutes compares two same-day intervals in minutes since midnight.
// Slot start is inclusive and slot end exclusive, mirrored for the window
// edges.
func overlapsMinutes(winStart, winEnd, slotStart, slotEnd int) bool {
	startInside := winStart >= slotStart && winStart < slotEnd
	endInside := winEnd > slotStart && winEnd <= slotEnd
	contains := winStart <= slotStart && winEnd >= slotEnd
	return startInside || endInside || contains
}

func parseClockMinutes(s string) (int, error) {
	// Accept both "HH:MM" and "HH:MM:SS" as stored by the schedule editor.
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Hour()*60 + t.Minute(), nil
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
