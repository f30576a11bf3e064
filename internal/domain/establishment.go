package domain

import "time"

type Establishment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
