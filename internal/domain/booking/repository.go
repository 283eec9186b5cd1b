package booking

import (
	"context"
	"time"

	"github.com/odremano/OBProyect/internal/models"
)

// Repository es el contrato de persistencia del contexto de reservas.
// Toda consulta recibe el negocio como parámetro explícito: el aislamiento
// multi-tenant se aplica acá, nunca como filtro implícito.
type Repository interface {
	// -------- Negocio --------
	GetNegocioByID(
		ctx context.Context,
		id uint,
	) (*models.Negocio, error)

	GetNegocioBySlug(
		ctx context.Context,
		slug string,
	) (*models.Negocio, error)

	// -------- Profesional / Servicio --------
	GetProfessional(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		negocioID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Horarios semanales --------
	// Devuelve las ventanas del día (recurrentes, más las excepciones
	// acotadas por fecha que incluyan a date), ordenadas por hora de inicio.
	ListWorkingHours(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
		weekday int,
		date time.Time,
	) ([]models.WorkingHours, error)

	// -------- Bloqueos --------
	ListTimeBlocksForDay(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.TimeBlock, error)

	// -------- Turnos (lectura de conflictos) --------
	// Solo estados activos (pending/confirmed): cancelados y completados
	// no ocupan agenda.
	ListActiveAppointmentsForDay(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Turnos (escritura) --------
	// CreateAppointment debe ser atómico frente a writers concurrentes:
	// re-chequeo de conflicto y alta en la misma transacción, con el
	// constraint de exclusión de la base como última línea. Un conflicto
	// se reporta como error de negocio "slot_conflict".
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Turnos (lecturas puntuales) --------
	GetAppointmentForClient(
		ctx context.Context,
		negocioID uint,
		appointmentID uint,
		clientID uint,
	) (*models.Appointment, error)

	GetAppointmentInNegocio(
		ctx context.Context,
		negocioID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	// -------- Turnos (listados) --------
	ListAppointmentsForClient(
		ctx context.Context,
		negocioID uint,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
