package booking

import (
	"errors"
	"time"

	"github.com/odremano/OBProyect/internal/models"
)

const (
	// SlotStep es la grilla fija sobre la que se generan candidatos.
	SlotStep = 30 * time.Minute

	// SlotLeadTime es el buffer de visibilidad para el día de hoy:
	// no se ofrecen slots que empiecen dentro de la próxima hora.
	SlotLeadTime = time.Hour

	// CancelNotice es la anticipación mínima para cancelar un turno.
	// Es deliberadamente más laxa que SlotLeadTime: se puede reservar
	// con una hora de margen pero cancelar exige dos.
	CancelNotice = 2 * time.Hour
)

// Overlaps aplica intersección de intervalos semiabiertos [a,b) ∩ [c,d):
// hay conflicto sii a < d && b > c. Tocar bordes no es conflicto.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ISOWeekday devuelve el día de la semana en orden ISO: 0=Lunes .. 6=Domingo.
// (time.Weekday usa 0=Domingo; acá se normaliza una sola vez.)
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DeriveEnd calcula el fin del turno a partir de la duración del servicio.
// Es la única forma válida de obtener end_datetime.
func DeriveEnd(start time.Time, svc *models.Service) time.Time {
	return start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
}

// AtClock ancla una hora de pared "HH:MM" sobre la fecha dada,
// conservando la location de la fecha.
func AtClock(date time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// ParseClock valida una hora de pared "HH:MM".
func ParseClock(hm string) (time.Time, error) {
	return time.Parse("15:04", hm)
}

// ParseDate parsea una fecha "YYYY-MM-DD" opcional.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, errMissingDate
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var errMissingDate = errors.New("fecha requerida")

// DayBounds devuelve [00:00, 24:00) del día de la fecha dada.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// SameDate compara solo la parte fecha.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
