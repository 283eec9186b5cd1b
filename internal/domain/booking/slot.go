package booking

import "time"

type AvailabilityInput struct {
	NegocioID      uint
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type CreateInput struct {
	NegocioID      uint
	ClientID       uint
	ProfessionalID uint
	ServiceID      uint
	StartDatetime  time.Time
	Notes          string
}
