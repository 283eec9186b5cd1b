package membership

import (
	"context"

	"github.com/odremano/OBProyect/internal/audit"
	domain "github.com/odremano/OBProyect/internal/domain/membership"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — membresías y sincronización de perfiles
// ======================================================

// SetRole asigna el rol de un usuario dentro de un negocio y mantiene
// sincronizado el perfil profesional: asignar "profesional" crea o
// reactiva el perfil; quitar el rol lo desactiva sin borrarlo, para
// conservar el historial de turnos atendidos.
type SetRole struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetRole(repo domain.Repository, auditor *audit.Dispatcher) *SetRole {
	return &SetRole{repo: repo, audit: auditor}
}

func (uc *SetRole) Execute(
	ctx context.Context,
	negocioID, userID uint,
	role string,
) (*models.Membership, error) {

	switch role {
	case models.RoleCliente, models.RoleProfesional, models.RoleAdministrador:
	default:
		return nil, httperr.ErrBusiness("invalid_role")
	}

	if _, err := uc.repo.GetUser(ctx, userID); err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	m, err := uc.repo.GetMembership(ctx, negocioID, userID)
	if err != nil {
		m = &models.Membership{NegocioID: negocioID, UserID: userID}
	}
	m.Role = role
	m.IsActive = true

	if err := uc.repo.SaveMembership(ctx, m); err != nil {
		return nil, err
	}

	if err := uc.syncProfessionalProfile(ctx, negocioID, userID, role); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		UserID:    &userID,
		Action:    "membership_role_set",
		Entity:    "membership",
		EntityID:  &m.ID,
		Metadata:  map[string]any{"role": role},
	})

	return m, nil
}

func (uc *SetRole) syncProfessionalProfile(
	ctx context.Context,
	negocioID, userID uint,
	role string,
) error {

	prof, err := uc.repo.GetProfessionalByUser(ctx, negocioID, userID)

	if role == models.RoleProfesional {
		if err != nil {
			prof = &models.Professional{
				NegocioID:   negocioID,
				UserID:      userID,
				IsAvailable: true,
			}
		} else {
			prof.IsAvailable = true
		}
		return uc.repo.SaveProfessional(ctx, prof)
	}

	// El rol dejó de ser profesional: el perfil se apaga, no se borra.
	if err == nil && prof.IsAvailable {
		prof.IsAvailable = false
		return uc.repo.SaveProfessional(ctx, prof)
	}
	return nil
}

// ListMembers lista las membresías de un negocio para la pantalla de
// administración.
type ListMembers struct {
	repo domain.Repository
}

func NewListMembers(repo domain.Repository) *ListMembers {
	return &ListMembers{repo: repo}
}

func (uc *ListMembers) Execute(
	ctx context.Context,
	negocioID uint,
) ([]models.Membership, error) {
	return uc.repo.ListMemberships(ctx, negocioID)
}
