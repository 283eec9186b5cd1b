package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	NegocioID uint     `gorm:"index" json:"negocio_id"`
	Negocio   *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Referencia pública, apta para compartir fuera del sistema.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint  `json:"client_id"`
	Client   *User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	ProfessionalID uint          `gorm:"index" json:"professional_id"`
	Professional   *Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional,omitempty"`

	ServiceID uint     `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	StartDatetime time.Time `gorm:"not null;index" json:"start_datetime"`
	EndDatetime   time.Time `gorm:"not null;check:end_datetime > start_datetime" json:"end_datetime"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave recalcula siempre end_datetime a partir de la duración del
// servicio, pisando cualquier valor que venga del caller.
func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	if a.Reference == "" {
		a.Reference = uuid.NewString()
	}

	if a.ServiceID == 0 || a.StartDatetime.IsZero() {
		return nil
	}

	var svc Service
	if err := tx.Select("duration_minutes").First(&svc, a.ServiceID).Error; err != nil {
		return err
	}
	if svc.DurationMinutes > 0 {
		a.EndDatetime = a.StartDatetime.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	}
	return nil
}
