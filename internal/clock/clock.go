package clock

import "time"

// Clock abstrae "ahora" para que las reglas de anticipación
// (buffer de visibilidad, ventana de cancelación) sean testeables.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func New() Clock {
	return realClock{}
}

// Fixed devuelve un reloj congelado en t. Pensado para tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
