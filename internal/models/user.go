package models

import "time"

const (
	RoleCliente       = "cliente"
	RoleProfesional   = "profesional"
	RoleAdministrador = "administrador"
)

type User struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	NegocioID uint     `json:"negocio_id"`
	Negocio   *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"negocio,omitempty"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Phone        string `gorm:"size:20" json:"phone_number"`
	Role         string `gorm:"size:20;default:'cliente'" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
