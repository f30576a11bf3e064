package domain

import "time"

// DaySlot is one weekday entry of a fixed weekly job. Times are wall-clock
// "HH:MM" strings without a date. When IsDayOff is set the times are ignored
// for conflict detection. SundayOfMonth (1..5) is only meaningful on the
// Sunday slot: the day off then applies to that occurrence of Sunday in the
// month instead of every Sunday.
type DaySlot struct {
	ID            int64   `json:"id"`
	Weekday       string  `json:"weekday"`
	TimeIn        *string `json:"timeIn"`
	TimeOut       *string `json:"timeOut"`
	IsDayOff      bool    `json:"isDayOff"`
	SundayOfMonth *int32  `json:"sundayOfMonth"`
}

// WeeklySchedule is the fixed job of a mashguiach, at most one per user.
// The schedule editor always replaces the whole slot set, never single slots.
type WeeklySchedule struct {
	ID              int64     `json:"id"`
	MashguiachID    int64     `json:"mashguiachID"`
	EstablishmentID int64     `json:"establishmentID"`
	Slots           []DaySlot `json:"slots"`
	CreatedAt       time.Time `json:"createdAt"`
	Version         int32     `json:"-"`
}
