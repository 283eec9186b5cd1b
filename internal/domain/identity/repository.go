package identity

import (
	"context"

	"github.com/odremano/OBProyect/internal/models"
)

// Repository es el contrato de persistencia de cuentas y registro.
type Repository interface {
	GetUserByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	GetUserByID(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	UpdateUser(
		ctx context.Context,
		u *models.User,
	) error

	// RegisterNegocio da de alta el negocio, su usuario administrador y
	// la membresía correspondiente en una sola transacción.
	RegisterNegocio(
		ctx context.Context,
		n *models.Negocio,
		admin *models.User,
		m *models.Membership,
	) error
}
