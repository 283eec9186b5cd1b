package schedule

import (
	"context"
	"time"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/cache"
	domain "github.com/odremano/OBProyect/internal/domain/schedule"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — bloqueos de agenda
// ======================================================

// CreateTimeBlockInput es el payload de alta de un bloqueo.
type CreateTimeBlockInput struct {
	ProfessionalID uint      `json:"professional_id"`
	StartDatetime  time.Time `json:"start_datetime"`
	EndDatetime    time.Time `json:"end_datetime"`
	Reason         string    `json:"reason"`
}

// ManageTimeBlocks administra los bloqueos puntuales de un profesional
// (vacaciones, ausencias, feriados). Un bloqueo puede pisar turnos ya
// tomados: no los cancela, solo impide reservas nuevas en ese rango.
type ManageTimeBlocks struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewManageTimeBlocks(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *ManageTimeBlocks {
	return &ManageTimeBlocks{repo: repo, audit: auditor, cache: c}
}

func (uc *ManageTimeBlocks) List(
	ctx context.Context,
	negocioID, professionalID uint,
	from time.Time,
) ([]models.TimeBlock, error) {

	if _, err := uc.repo.GetProfessional(ctx, negocioID, professionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	return uc.repo.ListTimeBlocks(ctx, negocioID, professionalID, from)
}

func (uc *ManageTimeBlocks) Create(
	ctx context.Context,
	negocioID uint,
	in CreateTimeBlockInput,
) (*models.TimeBlock, error) {

	if _, err := uc.repo.GetProfessional(ctx, negocioID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if !in.StartDatetime.Before(in.EndDatetime) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	block := &models.TimeBlock{
		NegocioID:      negocioID,
		ProfessionalID: in.ProfessionalID,
		StartDatetime:  in.StartDatetime,
		EndDatetime:    in.EndDatetime,
		Reason:         in.Reason,
	}

	if err := uc.repo.CreateTimeBlock(ctx, block); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, negocioID, in.ProfessionalID)

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "time_block_created",
		Entity:    "time_block",
		EntityID:  &block.ID,
	})

	return block, nil
}

func (uc *ManageTimeBlocks) Delete(
	ctx context.Context,
	negocioID, blockID uint,
) error {

	block, err := uc.repo.GetTimeBlock(ctx, negocioID, blockID)
	if err != nil {
		return httperr.ErrBusiness("time_block_not_found")
	}

	if err := uc.repo.DeleteTimeBlock(ctx, negocioID, blockID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, negocioID, block.ProfessionalID)

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "time_block_deleted",
		Entity:    "time_block",
		EntityID:  &blockID,
	})

	return nil
}
