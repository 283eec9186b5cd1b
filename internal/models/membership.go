package models

import "time"

// Membership vincula un usuario con un negocio y su rol dentro de él.
type Membership struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	NegocioID uint     `gorm:"uniqueIndex:idx_membership_user_negocio;not null" json:"negocio_id"`
	UserID    uint     `gorm:"uniqueIndex:idx_membership_user_negocio;not null" json:"user_id"`
	User      *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	Negocio   *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Role     string `gorm:"size:20;default:'cliente'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
