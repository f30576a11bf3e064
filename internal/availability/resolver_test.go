package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func at(day, hour, min int) time.Time {
	// June 2025: the 1st is a Sunday, the 11th a Wednesday.
	return time.Date(2025, time.June, day, hour, min, 0, 0, time.UTC)
}

func str(s string) *string { return &s }

func scheduleWith(slots ...domain.DaySlot) *domain.WeeklySchedule {
	return &domain.WeeklySchedule{ID: 1, MashguiachID: 1, EstablishmentID: 1, Slots: slots}
}

func workingSlot(weekday, in, out string) domain.DaySlot {
	return domain.DaySlot{Weekday: weekday, TimeIn: str(in), TimeOut: str(out)}
}

func TestIsAvailable(t *testing.T) {
	testCases := []struct {
		name      string
		start     time.Time
		end       time.Time
		schedule  *domain.WeeklySchedule
		available bool
	}{
		{
			name:      "sem escala fixa",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  nil,
			available: true,
		},
		{
			name:      "dia sem turno cadastrado",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  scheduleWith(workingSlot("Monday", "09:00", "17:00")),
			available: true,
		},
		{
			name:      "janela dentro do turno",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "09:00", "17:00")),
			available: false,
		},
		{
			name:      "janela começa no fim do turno",
			start:     at(11, 17, 0),
			end:       at(11, 19, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "09:00", "17:00")),
			available: true,
		},
		{
			name:      "janela termina no início do turno",
			start:     at(11, 8, 0),
			end:       at(11, 9, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "09:00", "17:00")),
			available: true,
		},
		{
			name:      "janela envolve o turno inteiro",
			start:     at(11, 8, 0),
			end:       at(11, 18, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "09:00", "17:00")),
			available: false,
		},
		{
			name:      "turno até meia-noite conflita com janela noturna",
			start:     at(11, 23, 0),
			end:       at(11, 23, 30),
			schedule:  scheduleWith(workingSlot("Wednesday", "22:00", "00:00")),
			available: false,
		},
		{
			name:      "janela até meia-noite conflita com turno noturno",
			start:     at(11, 22, 0),
			end:       at(12, 0, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "21:00", "23:00")),
			available: false,
		},
		{
			// The end minutes wrap into the next day; the tail is compared
			// against the slot of the start weekday.
			name:      "janela que passa da meia-noite usa o dia do início",
			start:     at(11, 18, 0),
			end:       at(12, 2, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "01:00", "03:00")),
			available: false,
		},
		{
			name:      "folga libera o dia",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  scheduleWith(domain.DaySlot{Weekday: "Wednesday", IsDayOff: true}),
			available: true,
		},
		{
			name:      "turno sem horários cadastrados",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  scheduleWith(domain.DaySlot{Weekday: "Wednesday"}),
			available: true,
		},
		{
			name:      "horário ilegível não bloqueia",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "9h00", "17h00")),
			available: true,
		},
		{
			name:      "horário com segundos é aceito",
			start:     at(11, 10, 0),
			end:       at(11, 12, 0),
			schedule:  scheduleWith(workingSlot("Wednesday", "09:00:00", "17:00:00")),
			available: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.available, IsAvailable(tc.start, tc.end, tc.schedule))
		})
	}
}

func TestIsAvailableNthSunday(t *testing.T) {
	nth := int32(2)
	sched := scheduleWith(domain.DaySlot{
		Weekday:       "Sunday",
		IsDayOff:      true,
		SundayOfMonth: &nth,
		TimeIn:        str("08:00"),
		TimeOut:       str("18:00"),
	})

	// June 8th 2025 is the second Sunday: the day off applies.
	assert.True(t, IsAvailable(at(8, 10, 0), at(8, 12, 0), sched))

	// June 1st is the first Sunday: a regular working day, the shift blocks.
	assert.False(t, IsAvailable(at(1, 10, 0), at(1, 12, 0), sched))
}

func TestFilter(t *testing.T) {
	pool := []*domain.User{
		{ID: 1, FullName: "Ana Levy"},
		{ID: 2, FullName: "Isaac Cohen"},
		{ID: 3, FullName: "Sara Stern"},
	}
	schedules := map[int64]*domain.WeeklySchedule{
		2: scheduleWith(workingSlot("Wednesday", "09:00", "17:00")),
	}
	assignments := []Assignment{
		{MashguiachID: 3, Start: at(11, 11, 0), End: at(11, 14, 0)},
		{MashguiachID: 1, Start: at(12, 10, 0), End: at(12, 12, 0)}, // other day
	}

	free := Filter(at(11, 10, 0), at(11, 12, 0), pool, schedules, assignments)

	require.Len(t, free, 1)
	assert.Equal(t, int64(1), free[0].ID)
}

func TestFilterKeepsPoolOrder(t *testing.T) {
	pool := []*domain.User{
		{ID: 5}, {ID: 3}, {ID: 9}, {ID: 1},
	}

	free := Filter(at(11, 10, 0), at(11, 12, 0), pool, nil, nil)

	require.Len(t, free, 4)
	for i, m := range pool {
		assert.Equal(t, m.ID, free[i].ID)
	}
}

func TestFilterAssignmentBoundaries(t *testing.T) {
	pool := []*domain.User{{ID: 1}}

	// Back-to-back services do not conflict, the interval is half-open.
	adjacent := []Assignment{{MashguiachID: 1, Start: at(11, 12, 0), End: at(11, 14, 0)}}
	assert.Len(t, Filter(at(11, 10, 0), at(11, 12, 0), pool, nil, adjacent), 1)

	overlapping := []Assignment{{MashguiachID: 1, Start: at(11, 11, 0), End: at(11, 14, 0)}}
	assert.Empty(t, Filter(at(11, 10, 0), at(11, 12, 0), pool, nil, overlapping))
}
