package models

import "time"

// WorkingHours es una ventana semanal de atención de un profesional.
// DayOfWeek usa orden ISO: 0=Lunes .. 6=Domingo.
// StartTime/EndTime son hora de pared "HH:MM", sin zona horaria.
// Una ventana no recurrente vale solo entre StartDate y EndDate.
type WorkingHours struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	NegocioID      uint     `json:"negocio_id"`
	ProfessionalID uint     `gorm:"index" json:"professional_id"`
	Negocio        *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DayOfWeek   int        `gorm:"check:day_of_week >= 0 AND day_of_week <= 6" json:"day_of_week"`
	StartTime   string     `gorm:"size:5;not null" json:"start_time"`
	EndTime     string     `gorm:"size:5;not null" json:"end_time"`
	IsRecurring bool       `gorm:"default:true" json:"is_recurring"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
