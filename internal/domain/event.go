package domain

import "time"

type Event struct {
	ID              int64     `json:"id"`
	EstablishmentID int64     `json:"establishmentID"`
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	Version         int32     `json:"-"`
}

// Service is one supervision slot inside an event. MashguiachID is nil while
// nobody has been assigned yet. DayRate/NightRate are nil when the service
// uses the configured default rates. The computed fields are persisted as
// returned by the rate splitter so reports do not need to recompute them.
type Service struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"eventID"`
	MashguiachID *int64    `json:"mashguiachID"`
	ArriveTime   time.Time `json:"arriveTime"`
	EndTime      time.Time `json:"endTime"`
	DayRate      *float64  `json:"dayRate"`
	NightRate    *float64  `json:"nightRate"`
	TransportFee float64   `json:"transportFee"`
	IsPaid       bool      `json:"isPaid"`

	DayHours    float64 `json:"dayHours"`
	NightHours  float64 `json:"nightHours"`
	DayAmount   float64 `json:"dayAmount"`
	NightAmount float64 `json:"nightAmount"`
	TotalAmount float64 `json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
