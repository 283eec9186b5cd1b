package membership

import (
	"context"

	"github.com/odremano/OBProyect/internal/models"
)

// Repository es el contrato de persistencia de membresías y de los
// perfiles profesionales que dependen de ellas.
type Repository interface {
	GetUser(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	GetMembership(
		ctx context.Context,
		negocioID uint,
		userID uint,
	) (*models.Membership, error)

	SaveMembership(
		ctx context.Context,
		m *models.Membership,
	) error

	ListMemberships(
		ctx context.Context,
		negocioID uint,
	) ([]models.Membership, error)

	// GetProfessionalByUser busca el perfil sin importar su disponibilidad:
	// un perfil desactivado también cuenta, para poder reactivarlo.
	GetProfessionalByUser(
		ctx context.Context,
		negocioID uint,
		userID uint,
	) (*models.Professional, error)

	SaveProfessional(
		ctx context.Context,
		prof *models.Professional,
	) error
}
