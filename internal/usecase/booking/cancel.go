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
// USE CASE — cancelación de turnos
// ======================================================

// CancelAppointment cancela turnos tanto del lado del cliente como del
// profesional. La regla de las 2 horas y la máquina de estados viven en
// el dominio; acá solo se resuelve quién puede tocar qué turno.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	clock clock.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.AvailabilityCache,
	clk clock.Clock,
) *CancelAppointment {
	return &CancelAppointment{repo: repo, audit: auditor, cache: c, clock: clk}
}

// ByClient solo alcanza turnos del propio cliente: un id ajeno responde
// not found, nunca forbidden, para no filtrar existencia.
func (uc *CancelAppointment) ByClient(
	ctx context.Context,
	negocioID, clientID, appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForClient(ctx, negocioID, appointmentID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	return uc.cancel(ctx, ap, &clientID, "appointment_cancelled_by_client")
}

// ByProfessional permite al profesional cancelar turnos de su propia
// agenda. Rige la misma anticipación mínima que para el cliente.
func (uc *CancelAppointment) ByProfessional(
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

	return uc.cancel(ctx, ap, nil, "appointment_cancelled_by_professional")
}

func (uc *CancelAppointment) cancel(
	ctx context.Context,
	ap *models.Appointment,
	actorID *uint,
	action string,
) (*models.Appointment, error) {

	if err := domain.Cancel(ap, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.NegocioID, ap.ProfessionalID)

	uc.audit.Dispatch(audit.Event{
		NegocioID: ap.NegocioID,
		UserID:    actorID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
