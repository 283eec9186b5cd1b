package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/dto"
)

// ======================================================
// USE CASE — agenda del profesional
// ======================================================

// Agenda resuelve las vistas del lado del profesional: los turnos de un
// día puntual y los días de un mes que tienen al menos un turno activo.
type Agenda struct {
	repo domain.Repository
}

func NewAgenda(repo domain.Repository) *Agenda {
	return &Agenda{repo: repo}
}

// ForDate devuelve todos los turnos del día, incluidos cancelados y
// completados: el profesional ve la foto completa, a diferencia del
// motor de disponibilidad que solo cuenta los activos.
func (uc *Agenda) ForDate(
	ctx context.Context,
	negocioID, professionalID uint,
	date time.Time,
) ([]dto.BookingView, error) {

	dayStart, dayEnd := domain.DayBounds(date)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, negocioID, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BookingView, 0, len(aps))
	for i := range aps {
		views = append(views, dto.NewBookingView(&aps[i], false))
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].StartDatetime.Before(views[j].StartDatetime)
	})
	return views, nil
}

// DaysWithAppointments lista los días del mes con al menos un turno
// activo, para pintar el calendario del profesional.
func (uc *Agenda) DaysWithAppointments(
	ctx context.Context,
	negocioID, professionalID uint,
	year int,
	month time.Month,
) ([]int, error) {

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, negocioID, professionalID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	days := []int{}
	for i := range aps {
		if !domain.IsActive(domain.Status(aps[i].Status)) {
			continue
		}
		d := aps[i].StartDatetime.Day()
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	sort.Ints(days)
	return days, nil
}
