package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/cache"
	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — creación de turnos
// ======================================================

// CreateAppointment valida y crea un turno. No confía en la lista de slots
// que el cliente haya visto: re-valida todo contra el estado actual para
// achicar la ventana entre consulta y reserva. La garantía final contra
// dos reservas simultáneas la da el repositorio (transacción + constraint
// de exclusión), no esta capa.
type CreateAppointment struct {
	repo          domain.Repository
	audit         *audit.Dispatcher
	cache         *cache.AvailabilityCache
	initialStatus domain.Status
}

func NewCreateAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.AvailabilityCache,
	initialStatusPolicy string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:          repo,
		audit:         auditor,
		cache:         c,
		initialStatus: domain.InitialStatus(initialStatusPolicy),
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Pertenencia al negocio. Las búsquedas ya vienen
	// acotadas por tenant (un id ajeno es un not found);
	// el cruce entre entidades se verifica igual acá,
	// nunca se delega en el scoping implícito.
	// --------------------------------------------------
	prof, err := uc.repo.GetProfessional(ctx, in.NegocioID, in.ProfessionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.NegocioID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if prof.NegocioID != in.NegocioID || svc.NegocioID != in.NegocioID || prof.NegocioID != svc.NegocioID {
		return nil, httperr.ErrBusiness("cross_tenant")
	}

	// --------------------------------------------------
	// 2. Llaves de disponibilidad
	// --------------------------------------------------
	if !prof.IsAvailable {
		return nil, httperr.ErrBusiness("professional_unavailable")
	}

	if !svc.IsActive {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	// --------------------------------------------------
	// 3. Fin derivado de la duración del servicio
	// --------------------------------------------------
	start := in.StartDatetime
	end := domain.DeriveEnd(start, svc)

	// --------------------------------------------------
	// 4. Conflicto contra turnos activos del día
	// --------------------------------------------------
	dayStart, dayEnd := domain.DayBounds(start)

	existing, err := uc.repo.ListActiveAppointmentsForDay(ctx, in.NegocioID, in.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	for _, ap := range existing {
		if domain.Overlaps(start, end, ap.StartDatetime, ap.EndDatetime) {
			return nil, httperr.ErrBusiness("slot_conflict")
		}
	}

	// --------------------------------------------------
	// 5. Horario de trabajo: tiene que existir al menos una
	// ventana ese día y el turno entrar completo en una.
	// --------------------------------------------------
	windows, err := uc.repo.ListWorkingHours(ctx, in.NegocioID, in.ProfessionalID, domain.ISOWeekday(start), start)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	if !fitsInAnyWindow(start, end, windows) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 6. Bloqueos
	// --------------------------------------------------
	blocks, err := uc.repo.ListTimeBlocksForDay(ctx, in.NegocioID, in.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if domain.Overlaps(start, end, b.StartDatetime, b.EndDatetime) {
			return nil, httperr.ErrBusiness("timeslot_blocked")
		}
	}

	// --------------------------------------------------
	// 7. Alta atómica. El repositorio re-chequea conflicto
	// dentro de la transacción y traduce la violación del
	// constraint de exclusión a slot_conflict.
	// --------------------------------------------------
	ap := &models.Appointment{
		NegocioID:      in.NegocioID,
		Reference:      uuid.NewString(),
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		StartDatetime:  start,
		EndDatetime:    end,
		Status:         string(uc.initialStatus),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				NegocioID: in.NegocioID,
				UserID:    &in.ClientID,
				Action:    "appointment_conflict",
				Entity:    "appointment",
				Metadata:  map[string]any{"start": start, "end": end},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.NegocioID, in.ProfessionalID)

	uc.audit.Dispatch(audit.Event{
		NegocioID: in.NegocioID,
		UserID:    &in.ClientID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

// fitsInAnyWindow exige contención completa en una misma ventana:
// start >= inicio de ventana y end <= fin de ventana. Un turno que
// cruza dos ventanas contiguas no es válido.
func fitsInAnyWindow(start, end time.Time, windows []models.WorkingHours) bool {
	for _, w := range windows {
		winStart, err := domain.AtClock(start, w.StartTime)
		if err != nil {
			continue
		}
		winEnd, err := domain.AtClock(start, w.EndTime)
		if err != nil {
			continue
		}

		if !start.Before(winStart) && !end.After(winEnd) {
			return true
		}
	}
	return false
}
