package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kashrut-ops/mashguiach-manager/backend/internal/domain"
)

func str(s string) *string { return &s }

func TestValidateWeeklySchedule(t *testing.T) {
	nth := int32(2)
	badNth := int32(6)

	testCases := []struct {
		name    string
		slots   []domain.DaySlot
		wantErr bool
	}{
		{
			name: "escala válida",
			slots: []domain.DaySlot{
				{Weekday: "Monday", TimeIn: str("09:00"), TimeOut: str("17:00")},
				{Weekday: "Tuesday", IsDayOff: true},
				{Weekday: "Sunday", IsDayOff: true, SundayOfMonth: &nth},
			},
		},
		{
			name: "mais de sete dias",
			slots: []domain.DaySlot{
				{Weekday: "Sunday"}, {Weekday: "Monday"}, {Weekday: "Tuesday"},
				{Weekday: "Wednesday"}, {Weekday: "Thursday"}, {Weekday: "Friday"},
				{Weekday: "Saturday"}, {Weekday: "Sunday"},
			},
			wantErr: true,
		},
		{
			name:    "dia da semana inválido",
			slots:   []domain.DaySlot{{Weekday: "Segunda"}},
			wantErr: true,
		},
		{
			name: "dia repetido",
			slots: []domain.DaySlot{
				{Weekday: "Monday"},
				{Weekday: "Monday"},
			},
			wantErr: true,
		},
		{
			name:    "regra de domingo fora do domingo",
			slots:   []domain.DaySlot{{Weekday: "Monday", SundayOfMonth: &nth}},
			wantErr: true,
		},
		{
			name:    "regra de domingo fora do intervalo",
			slots:   []domain.DaySlot{{Weekday: "Sunday", SundayOfMonth: &badNth}},
			wantErr: true,
		},
		{
			name:    "apenas horário de entrada",
			slots:   []domain.DaySlot{{Weekday: "Monday", TimeIn: str("09:00")}},
			wantErr: true,
		},
		{
			name:    "horário ilegível",
			slots:   []domain.DaySlot{{Weekday: "Monday", TimeIn: str("9h"), TimeOut: str("17:00")}},
			wantErr: true,
		},
		{
			name:    "saída antes da entrada",
			slots:   []domain.DaySlot{{Weekday: "Monday", TimeIn: str("17:00"), TimeOut: str("09:00")}},
			wantErr: true,
		},
		{
			name:  "saída à meia-noite é fim do dia",
			slots: []domain.DaySlot{{Weekday: "Monday", TimeIn: str("17:00"), TimeOut: str("00:00")}},
		},
		{
			name:  "folga ignora horários inválidos",
			slots: []domain.DaySlot{{Weekday: "Monday", IsDayOff: true, TimeIn: str("9h")}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWeeklySchedule(&domain.WeeklySchedule{Slots: tc.slots})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateServiceWindow(t *testing.T) {
	arrive := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.Local)

	assert.NoError(t, ValidateServiceWindow(arrive, arrive.Add(2*time.Hour)))
	assert.Error(t, ValidateServiceWindow(time.Time{}, arrive))
	assert.Error(t, ValidateServiceWindow(arrive, arrive))
	assert.Error(t, ValidateServiceWindow(arrive, arrive.Add(-time.Hour)))
}
