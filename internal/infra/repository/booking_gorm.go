package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

var _ domain.Repository = (*BookingGormRepository)(nil)

// --------------------------------------------------
// Negocio
// --------------------------------------------------

func (r *BookingGormRepository) GetNegocioByID(
	ctx context.Context,
	id uint,
) (*models.Negocio, error) {

	var negocio models.Negocio
	if err := r.db.WithContext(ctx).First(&negocio, id).Error; err != nil {
		return nil, err
	}
	return &negocio, nil
}

func (r *BookingGormRepository) GetNegocioBySlug(
	ctx context.Context,
	slug string,
) (*models.Negocio, error) {

	var negocio models.Negocio
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&negocio).Error; err != nil {
		return nil, err
	}
	return &negocio, nil
}

// --------------------------------------------------
// Profesional / Servicio
// --------------------------------------------------

func (r *BookingGormRepository) GetProfessional(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND negocio_id = ?", professionalID, negocioID).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	negocioID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND negocio_id = ?", serviceID, negocioID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Horarios semanales
// --------------------------------------------------

func (r *BookingGormRepository) ListWorkingHours(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	weekday int,
	date time.Time,
) ([]models.WorkingHours, error) {

	day := date.Format("2006-01-02")

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where(
			"negocio_id = ? AND professional_id = ? AND day_of_week = ? AND (is_recurring = true OR (start_date <= ? AND end_date >= ?))",
			negocioID, professionalID, weekday, day, day,
		).
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Bloqueos
// --------------------------------------------------

func (r *BookingGormRepository) ListTimeBlocksForDay(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where(
			"negocio_id = ? AND professional_id = ? AND start_datetime < ? AND end_datetime > ?",
			negocioID, professionalID, dayEnd, dayStart,
		).
		Order("start_datetime ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Turnos (lectura de conflictos)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_datetime", "end_datetime", "status").
		Where(
			"negocio_id = ? AND professional_id = ? AND status IN ? AND start_datetime < ? AND end_datetime > ?",
			negocioID, professionalID, domain.ActiveStatuses(), dayEnd, dayStart,
		).
		Order("start_datetime ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Turnos (escritura)
// --------------------------------------------------

// CreateAppointment hace el alta dentro de una transacción: bloquea y
// recuenta los turnos activos que pisan el rango, y recién ahí inserta.
// Si dos writers pasan el recuento a la vez, el constraint de exclusión
// de Postgres corta al segundo y el error se traduce a slot_conflict.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND status IN ? AND start_datetime < ? AND end_datetime > ?",
				ap.ProfessionalID, domain.ActiveStatuses(), ap.EndDatetime, ap.StartDatetime,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		return tx.Create(ap).Error
	})

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("slot_conflict")
		}
		return err
	}
	return nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Turnos (lecturas puntuales)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentForClient(
	ctx context.Context,
	negocioID uint,
	appointmentID uint,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"id = ? AND negocio_id = ? AND client_id = ?",
			appointmentID, negocioID, clientID,
		).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentInNegocio(
	ctx context.Context,
	negocioID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND negocio_id = ?", appointmentID, negocioID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Turnos (listados)
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	negocioID uint,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Professional.User").
		Preload("Service").
		Where("negocio_id = ? AND client_id = ?", negocioID, clientID).
		Order("start_datetime DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"negocio_id = ? AND professional_id = ? AND start_datetime >= ? AND start_datetime < ?",
			negocioID, professionalID, start, end,
		).
		Order("start_datetime ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}
