package catalog

import (
	"context"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/cache"
	domain "github.com/odremano/OBProyect/internal/domain/catalog"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — perfiles profesionales
// ======================================================

type ProfessionalInput struct {
	Bio         string `json:"bio"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

// ManageProfessionals edita el perfil de un profesional. El alta y la
// baja del perfil no pasan por acá: las maneja la sincronización de
// membresías al asignar o quitar el rol.
type ManageProfessionals struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewManageProfessionals(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *ManageProfessionals {
	return &ManageProfessionals{repo: repo, audit: auditor, cache: c}
}

func (uc *ManageProfessionals) List(
	ctx context.Context,
	negocioID uint,
) ([]models.Professional, error) {
	return uc.repo.ListProfessionals(ctx, negocioID, false)
}

func (uc *ManageProfessionals) Update(
	ctx context.Context,
	negocioID, professionalID uint,
	in ProfessionalInput,
) (*models.Professional, error) {

	prof, err := uc.repo.GetProfessional(ctx, negocioID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	prof.Bio = in.Bio
	if in.IsAvailable != nil && *in.IsAvailable != prof.IsAvailable {
		prof.IsAvailable = *in.IsAvailable
		// Cambiar la llave de disponibilidad altera los slots ofrecidos.
		uc.cache.Invalidate(ctx, negocioID, professionalID)
	}

	if err := uc.repo.UpdateProfessional(ctx, prof); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "professional_updated",
		Entity:    "professional",
		EntityID:  &prof.ID,
	})

	return prof, nil
}

// SetAvailability prende o apaga la llave de disponibilidad sin tocar
// el resto del perfil. La usa el propio profesional desde su agenda.
func (uc *ManageProfessionals) SetAvailability(
	ctx context.Context,
	negocioID, professionalID uint,
	available bool,
) (*models.Professional, error) {

	prof, err := uc.repo.GetProfessional(ctx, negocioID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if prof.IsAvailable != available {
		prof.IsAvailable = available
		if err := uc.repo.UpdateProfessional(ctx, prof); err != nil {
			return nil, err
		}
		uc.cache.Invalidate(ctx, negocioID, professionalID)

		uc.audit.Dispatch(audit.Event{
			NegocioID: negocioID,
			Action:    "professional_availability_changed",
			Entity:    "professional",
			EntityID:  &prof.ID,
			Metadata:  map[string]any{"is_available": available},
		})
	}

	return prof, nil
}

// SetPhoto guarda la URL de la foto de perfil ya subida al storage.
func (uc *ManageProfessionals) SetPhoto(
	ctx context.Context,
	negocioID, professionalID uint,
	url string,
) (*models.Professional, error) {

	prof, err := uc.repo.GetProfessional(ctx, negocioID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	prof.ProfilePictureURL = url
	if err := uc.repo.UpdateProfessional(ctx, prof); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "professional_photo_updated",
		Entity:    "professional",
		EntityID:  &prof.ID,
	})

	return prof, nil
}
