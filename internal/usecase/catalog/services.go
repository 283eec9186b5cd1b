package catalog

import (
	"context"

	"github.com/odremano/OBProyect/internal/audit"
	domain "github.com/odremano/OBProyect/internal/domain/catalog"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — administración de servicios
// ======================================================

type ServiceInput struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// ManageServices cubre el ABM de servicios del administrador. No hay
// borrado físico: un servicio sale del catálogo desactivándose, así los
// turnos históricos conservan su referencia.
type ManageServices struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewManageServices(repo domain.Repository, auditor *audit.Dispatcher) *ManageServices {
	return &ManageServices{repo: repo, audit: auditor}
}

func (uc *ManageServices) List(
	ctx context.Context,
	negocioID uint,
) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, negocioID, false)
}

func (uc *ManageServices) Create(
	ctx context.Context,
	negocioID uint,
	in ServiceInput,
) (*models.Service, error) {

	if err := validateService(in); err != nil {
		return nil, err
	}

	svc := &models.Service{
		NegocioID:       negocioID,
		Name:            in.Name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		IsActive:        true,
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "service_created",
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	return svc, nil
}

func (uc *ManageServices) Update(
	ctx context.Context,
	negocioID, serviceID uint,
	in ServiceInput,
) (*models.Service, error) {

	svc, err := uc.repo.GetService(ctx, negocioID, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if err := validateService(in); err != nil {
		return nil, err
	}

	svc.Name = in.Name
	svc.Description = in.Description
	svc.DurationMinutes = in.DurationMinutes
	svc.Price = in.Price
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := uc.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "service_updated",
		Entity:    "service",
		EntityID:  &svc.ID,
	})

	return svc, nil
}

func (uc *ManageServices) Deactivate(
	ctx context.Context,
	negocioID, serviceID uint,
) error {

	svc, err := uc.repo.GetService(ctx, negocioID, serviceID)
	if err != nil {
		return httperr.ErrBusiness("service_not_found")
	}
	if !svc.IsActive {
		return nil
	}

	svc.IsActive = false
	if err := uc.repo.UpdateService(ctx, svc); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "service_deactivated",
		Entity:    "service",
		EntityID:  &svc.ID,
	})
	return nil
}

func validateService(in ServiceInput) error {
	if in.Name == "" {
		return httperr.ErrBusiness("service_name_required")
	}
	if in.DurationMinutes <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	if in.Price < 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	return nil
}
