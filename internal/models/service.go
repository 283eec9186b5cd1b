package models

import "time"

type Service struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	NegocioID uint     `json:"negocio_id"`
	Negocio   *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name            string  `gorm:"size:100;not null" json:"name"`
	Description     string  `gorm:"type:text" json:"description"`
	DurationMinutes int     `gorm:"not null;check:duration_minutes > 0" json:"duration_minutes"`
	Price           float64 `gorm:"type:decimal(10,2);check:price >= 0" json:"price"`
	IsActive        bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
