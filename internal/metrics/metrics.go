package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los contadores de negocio del servicio.
type Metrics struct {
	SlotQueries       prometheus.Counter
	BookingsCreated   prometheus.Counter
	BookingConflicts  prometheus.Counter
	BookingsCancelled prometheus.Counter
	BookingsCompleted prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	BusinessErrors    *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	return &Metrics{
		SlotQueries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_queries_total",
			Help:      "Consultas de disponibilidad atendidas",
		}),
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Turnos creados",
		}),
		BookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Intentos de reserva rechazados por conflicto de horario",
		}),
		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "Turnos cancelados",
		}),
		BookingsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_completed_total",
			Help:      "Turnos completados",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_cache_hits_total",
			Help:      "Aciertos del cache de disponibilidad",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_cache_misses_total",
			Help:      "Fallos del cache de disponibilidad",
		}),
		BusinessErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "business_errors_total",
			Help:      "Errores de negocio por código",
		}, []string{"code"}),
	}
}
