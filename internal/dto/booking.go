package dto

import (
	"time"

	"github.com/odremano/OBProyect/internal/models"
)

// BookingView es la vista plana de un turno para las pantallas del
// cliente y de la agenda del profesional.
type BookingView struct {
	ID               uint      `json:"id"`
	Reference        string    `json:"reference"`
	ClientName       string    `json:"client_name,omitempty"`
	ProfessionalName string    `json:"professional_name,omitempty"`
	ServiceName      string    `json:"service_name,omitempty"`
	ServicePrice     float64   `json:"service_price,omitempty"`
	StartDatetime    time.Time `json:"start_datetime"`
	EndDatetime      time.Time `json:"end_datetime"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes,omitempty"`
	CanCancel        bool      `json:"can_cancel"`
}

func NewBookingView(ap *models.Appointment, canCancel bool) BookingView {
	v := BookingView{
		ID:            ap.ID,
		Reference:     ap.Reference,
		StartDatetime: ap.StartDatetime,
		EndDatetime:   ap.EndDatetime,
		Status:        ap.Status,
		Notes:         ap.Notes,
		CanCancel:     canCancel,
	}

	if ap.Client != nil {
		v.ClientName = ap.Client.FullName()
	}
	if ap.Professional != nil && ap.Professional.User != nil {
		v.ProfessionalName = ap.Professional.User.FullName()
	}
	if ap.Service != nil {
		v.ServiceName = ap.Service.Name
		v.ServicePrice = ap.Service.Price
	}
	return v
}

// MyBookings separa la vista del cliente en próximos e historial.
type MyBookings struct {
	Upcoming []BookingView `json:"upcoming"`
	History  []BookingView `json:"history"`
}
