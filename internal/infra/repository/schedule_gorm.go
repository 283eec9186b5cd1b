package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/schedule"
	"github.com/odremano/OBProyect/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

var _ domain.Repository = (*ScheduleGormRepository)(nil)

func (r *ScheduleGormRepository) GetProfessional(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND negocio_id = ?", professionalID, negocioID).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Horarios semanales
// --------------------------------------------------

func (r *ScheduleGormRepository) ListWorkingHours(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("negocio_id = ? AND professional_id = ?", negocioID, professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *ScheduleGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	hours []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("negocio_id = ? AND professional_id = ?", negocioID, professionalID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}

// --------------------------------------------------
// Bloqueos
// --------------------------------------------------

func (r *ScheduleGormRepository) ListTimeBlocks(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	from time.Time,
) ([]models.TimeBlock, error) {

	var blocks []models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where(
			"negocio_id = ? AND professional_id = ? AND end_datetime > ?",
			negocioID, professionalID, from,
		).
		Order("start_datetime ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) CreateTimeBlock(
	ctx context.Context,
	block *models.TimeBlock,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *ScheduleGormRepository) GetTimeBlock(
	ctx context.Context,
	negocioID uint,
	blockID uint,
) (*models.TimeBlock, error) {

	var block models.TimeBlock
	if err := r.db.WithContext(ctx).
		Where("id = ? AND negocio_id = ?", blockID, negocioID).
		First(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *ScheduleGormRepository) DeleteTimeBlock(
	ctx context.Context,
	negocioID uint,
	blockID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND negocio_id = ?", blockID, negocioID).
		Delete(&models.TimeBlock{}).Error
}
