package utils

import (
	"fmt"
	"time"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

var weekdayNames = map[string]bool{
	time.Monday.String():    true,
	time.Tuesday.String():   true,
	time.Wednesday.String(): true,
	time.Thursday.String():  true,
	time.Friday.String():    true,
	time.Saturday.String():  true,
	time.Sunday.String():    true,
}

// ValidateWeeklySchedule checks a whole slot set before the editor replaces
// the schedule. The conflict resolver itself fails open on bad data, so this
// is the only place where malformed slots are rejected.
func ValidateWeeklySchedule(ws *domain.WeeklySchedule) error {
	if len(ws.Slots) > 7 {
		return fmt.Errorf("a escala fixa não pode ter mais de 7 dias")
	}

	seen := make(map[string]bool)

	for i, slot := range ws.Slots {
		if !weekdayNames[slot.Weekday] {
			return fmt.Errorf("o dia %q da escala fixa é inválido", slot.Weekday)
		}
		if seen[slot.Weekday] {
			return fmt.Errorf("o dia %s aparece mais de uma vez na escala fixa", slot.Weekday)
		}
		seen[slot.Weekday] = true

		if slot.SundayOfMonth != nil {
			if slot.Weekday != time.Sunday.String() {
				return fmt.Errorf("a regra de domingo do mês só pode ser usada no domingo")
			}
			if *slot.SundayOfMonth < 1 || *slot.SundayOfMonth > 5 {
				return fmt.Errorf("a regra de domingo do mês deve estar entre 1 e 5")
			}
		}

		if slot.IsDayOff {
			// Times of a day-off slot are ignored for conflict detection.
			continue
		}

		if (slot.TimeIn == nil) != (slot.TimeOut == nil) {
			return fmt.Errorf("o dia %d da escala fixa precisa de horário de entrada e de saída", i+1)
		}
		if slot.TimeIn == nil {
			continue
		}

		timeIn, err := time.Parse("15:04", *slot.TimeIn)
		if err != nil {
			return fmt.Errorf("o horário de entrada do dia %d é inválido", i+1)
		}
		timeOut, err := time.Parse("15:04", *slot.TimeOut)
		if err != nil {
			return fmt.Errorf("o horário de saída do dia %d é inválido", i+1)
		}

		// 00:00 as time-out means end of day, which is always after time-in.
		if *slot.TimeOut != "00:00" && !timeOut.After(timeIn) {
			return fmt.Errorf("o horário de saída do dia %d deve ser depois do horário de entrada", i+1)
		}
	}

	return nil
}

// ValidateServiceWindow rejects obviously broken service windows at the API
// boundary. The splitter tolerates them, but the editor should not store them.
func ValidateServiceWindow(arrive, end time.Time) error {
	if arrive.IsZero() || end.IsZero() {
		return fmt.Errorf("o horário do serviço é obrigatório")
	}
	if !end.After(arrive) {
		return fmt.Errorf("o horário final do serviço deve ser depois do horário de chegada")
	}
	return nil
}
