package catalog

import (
	"context"

	"github.com/odremano/OBProyect/internal/models"
)

// Repository es el contrato de persistencia del catálogo público y de
// la administración de servicios y profesionales.
type Repository interface {
	GetNegocioBySlug(
		ctx context.Context,
		slug string,
	) (*models.Negocio, error)

	// -------- Servicios --------
	ListServices(
		ctx context.Context,
		negocioID uint,
		onlyActive bool,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		negocioID uint,
		serviceID uint,
	) (*models.Service, error)

	CreateService(
		ctx context.Context,
		svc *models.Service,
	) error

	UpdateService(
		ctx context.Context,
		svc *models.Service,
	) error

	// -------- Profesionales --------
	// Los listados precargan el usuario asociado.
	ListProfessionals(
		ctx context.Context,
		negocioID uint,
		onlyAvailable bool,
	) ([]models.Professional, error)

	GetProfessional(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
	) (*models.Professional, error)

	UpdateProfessional(
		ctx context.Context,
		prof *models.Professional,
	) error
}
