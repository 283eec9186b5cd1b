package models

import "time"

// TimeBlock es un bloqueo puntual (vacaciones, trámite, descanso)
// que pisa los horarios semanales del profesional.
type TimeBlock struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	NegocioID      uint     `json:"negocio_id"`
	ProfessionalID uint     `gorm:"index" json:"professional_id"`
	Negocio        *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartDatetime time.Time `gorm:"not null" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null;check:end_datetime > start_datetime" json:"end_datetime"`
	Reason        string    `gorm:"size:200" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
