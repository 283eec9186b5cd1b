package booking

import (
	"context"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/cache"
	"github.com/odremano/OBProyect/internal/clock"
	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — cierre de turnos
// ======================================================

// CompleteAppointment marca un turno como atendido. Solo el profesional
// dueño de la agenda puede cerrarlo.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	clock clock.Clock
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.AvailabilityCache,
	clk clock.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{repo: repo, audit: auditor, cache: c, clock: clk}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	negocioID, professionalID, appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentInNegocio(ctx, negocioID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if ap.ProfessionalID != professionalID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	if err := domain.Complete(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Un turno completado deja de ocupar agenda; si se cierra antes de
	// tiempo el hueco vuelve a estar disponible.
	uc.cache.Invalidate(ctx, ap.NegocioID, ap.ProfessionalID)

	uc.audit.Dispatch(audit.Event{
		NegocioID: ap.NegocioID,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
