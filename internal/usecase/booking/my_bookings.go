package booking

import (
	"context"
	"sort"

	"github.com/odremano/OBProyect/internal/clock"
	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/dto"
)

// ======================================================
// USE CASE — mis turnos (vista del cliente)
// ======================================================

// MyBookings arma la vista del cliente: turnos próximos (activos y a
// futuro, los más cercanos primero) e historial (todo lo demás, los más
// recientes primero). Cada turno lleva resuelto si todavía puede
// cancelarse, para que el front no duplique la regla de las 2 horas.
type MyBookings struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewMyBookings(repo domain.Repository, clk clock.Clock) *MyBookings {
	return &MyBookings{repo: repo, clock: clk}
}

func (uc *MyBookings) Execute(
	ctx context.Context,
	negocioID, clientID uint,
) (*dto.MyBookings, error) {

	aps, err := uc.repo.ListAppointmentsForClient(ctx, negocioID, clientID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	out := &dto.MyBookings{
		Upcoming: []dto.BookingView{},
		History:  []dto.BookingView{},
	}

	for i := range aps {
		ap := &aps[i]
		view := dto.NewBookingView(ap, domain.CanClientCancel(ap, now))

		if domain.IsActive(domain.Status(ap.Status)) && ap.StartDatetime.After(now) {
			out.Upcoming = append(out.Upcoming, view)
		} else {
			out.History = append(out.History, view)
		}
	}

	sort.Slice(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].StartDatetime.Before(out.Upcoming[j].StartDatetime)
	})
	sort.Slice(out.History, func(i, j int) bool {
		return out.History[i].StartDatetime.After(out.History[j].StartDatetime)
	})

	return out, nil
}
