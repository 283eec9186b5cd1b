package booking

import (
	"context"
	"sort"
	"time"

	"github.com/odremano/OBProyect/internal/clock"
	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

type GenerateSlots struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGenerateSlots(repo domain.Repository, clk clock.Clock) *GenerateSlots {
	return &GenerateSlots{repo: repo, clock: clk}
}

// Execute enumera todos los slots reservables del día para un profesional
// y un servicio. Es una función pura del estado actual de agenda/bloqueos:
// re-ejecutarla sin cambios da el mismo resultado.
func (uc *GenerateSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := lookupOffering(ctx, uc.repo, in)
	if err != nil {
		return nil, err
	}

	return availableSlots(ctx, uc.repo, uc.clock, in.NegocioID, in.ProfessionalID, svc, in.Date, false)
}

// lookupOffering resuelve profesional y servicio dentro del negocio.
// Para consultas de disponibilidad, un profesional no disponible o un
// servicio inactivo se responde igual que uno inexistente: la distinción
// solo existe al momento de reservar.
func lookupOffering(
	ctx context.Context,
	repo domain.Repository,
	in domain.AvailabilityInput,
) (*models.Service, error) {

	prof, err := repo.GetProfessional(ctx, in.NegocioID, in.ProfessionalID)
	if err != nil || !prof.IsAvailable {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := repo.GetService(ctx, in.NegocioID, in.ServiceID)
	if err != nil || !svc.IsActive {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	return svc, nil
}

// availableSlots es el recorrido compartido entre la enumeración completa
// y el chequeo de existencia (firstOnly corta en el primer slot libre).
//
// Reglas:
//   - fecha pasada → lista vacía, sin error
//   - ventanas del día por orden ISO (0=Lunes)
//   - grilla fija de 30 minutos desde el inicio de cada ventana
//   - candidato válido sii start+duración <= fin de ventana
//   - hoy: se descartan candidatos que empiecen antes de now+1h
//   - conflicto semiabierto contra turnos activos y bloqueos
//   - ventanas superpuestas se toleran: los slots se deduplican por inicio
func availableSlots(
	ctx context.Context,
	repo domain.Repository,
	clk clock.Clock,
	negocioID uint,
	professionalID uint,
	svc *models.Service,
	date time.Time,
	firstOnly bool,
) ([]domain.TimeSlot, error) {

	now := clk.Now()
	todayStart, _ := domain.DayBounds(now)
	dayStart, dayEnd := domain.DayBounds(date)

	if dayStart.Before(todayStart) {
		return []domain.TimeSlot{}, nil
	}

	weekday := domain.ISOWeekday(date)

	windows, err := repo.ListWorkingHours(ctx, negocioID, professionalID, weekday, date)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		// El profesional no trabaja este día: cero slots, no es error.
		return []domain.TimeSlot{}, nil
	}

	appointments, err := repo.ListActiveAppointmentsForDay(ctx, negocioID, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	blocks, err := repo.ListTimeBlocksForDay(ctx, negocioID, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	isToday := domain.SameDate(date, now)
	minStart := now.Add(domain.SlotLeadTime)

	seen := make(map[string]struct{})
	var slots []domain.TimeSlot

	for _, w := range windows {
		winStart, err := domain.AtClock(date, w.StartTime)
		if err != nil {
			continue
		}
		winEnd, err := domain.AtClock(date, w.EndTime)
		if err != nil {
			continue
		}

		for cur := winStart; !cur.Add(duration).After(winEnd); cur = cur.Add(domain.SlotStep) {
			slotStart := cur
			slotEnd := cur.Add(duration)

			if isToday && slotStart.Before(minStart) {
				continue
			}

			if conflictsWithAny(slotStart, slotEnd, appointments, blocks) {
				continue
			}

			key := slotStart.Format("15:04")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})

			if firstOnly {
				return slots, nil
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start < slots[j].Start
	})

	return slots, nil
}

func conflictsWithAny(
	start, end time.Time,
	appointments []models.Appointment,
	blocks []models.TimeBlock,
) bool {
	for _, ap := range appointments {
		if domain.Overlaps(start, end, ap.StartDatetime, ap.EndDatetime) {
			return true
		}
	}
	for _, b := range blocks {
		if domain.Overlaps(start, end, b.StartDatetime, b.EndDatetime) {
			return true
		}
	}
	return false
}
