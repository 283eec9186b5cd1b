package models

import "time"

// Professional es el perfil de un usuario que atiende turnos en un negocio.
// Un mismo usuario puede tener un perfil por negocio, nunca dos en el mismo.
type Professional struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	NegocioID uint     `gorm:"uniqueIndex:idx_prof_user_negocio;not null" json:"negocio_id"`
	UserID    uint     `gorm:"uniqueIndex:idx_prof_user_negocio;not null" json:"user_id"`
	User      *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	Negocio   *Negocio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Bio               string `gorm:"type:text" json:"bio"`
	ProfilePictureURL string `gorm:"size:500" json:"profile_picture_url"`

	// Llave de disponibilidad independiente de la agenda:
	// en false el profesional no recibe reservas aunque tenga horarios cargados.
	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
