package models

import "time"

// Negocio es el límite de aislamiento multi-tenant:
// toda entidad del sistema pertenece a exactamente un negocio.
type Negocio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone       string    `gorm:"size:20" json:"phone"`
	Address     string    `gorm:"size:255" json:"address"`
	LogoURL     string    `gorm:"size:500" json:"logo_url"`
	ThemeColors string    `gorm:"type:text" json:"theme_colors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
