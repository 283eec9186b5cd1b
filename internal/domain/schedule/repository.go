package schedule

import (
	"context"
	"time"

	"github.com/odremano/OBProyect/internal/models"
)

// Repository es el contrato de persistencia de horarios y bloqueos.
type Repository interface {
	GetProfessional(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Horarios semanales --------
	ListWorkingHours(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
	) ([]models.WorkingHours, error)

	// ReplaceWorkingHours reemplaza la semana completa en una transacción:
	// borra todas las ventanas del profesional y escribe las nuevas.
	ReplaceWorkingHours(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
		hours []models.WorkingHours,
	) error

	// -------- Bloqueos --------
	ListTimeBlocks(
		ctx context.Context,
		negocioID uint,
		professionalID uint,
		from time.Time,
	) ([]models.TimeBlock, error)

	CreateTimeBlock(
		ctx context.Context,
		block *models.TimeBlock,
	) error

	GetTimeBlock(
		ctx context.Context,
		negocioID uint,
		blockID uint,
	) (*models.TimeBlock, error)

	DeleteTimeBlock(
		ctx context.Context,
		negocioID uint,
		blockID uint,
	) error
}
