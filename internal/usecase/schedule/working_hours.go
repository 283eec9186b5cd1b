package schedule

import (
	"context"

	"github.com/odremano/OBProyect/internal/audit"
	"github.com/odremano/OBProyect/internal/cache"
	booking "github.com/odremano/OBProyect/internal/domain/booking"
	domain "github.com/odremano/OBProyect/internal/domain/schedule"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — horarios semanales
// ======================================================

// WorkingHoursInput es una ventana tal como llega del front.
type WorkingHoursInput struct {
	DayOfWeek   int     `json:"day_of_week"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	IsRecurring bool    `json:"is_recurring"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// ManageWorkingHours lee y reemplaza la semana de un profesional.
// La actualización es reemplazo total: lo que no viene en el payload
// deja de existir. No hay edición parcial de ventanas.
type ManageWorkingHours struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
}

func NewManageWorkingHours(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c *cache.AvailabilityCache,
) *ManageWorkingHours {
	return &ManageWorkingHours{repo: repo, audit: auditor, cache: c}
}

func (uc *ManageWorkingHours) Get(
	ctx context.Context,
	negocioID, professionalID uint,
) ([]models.WorkingHours, error) {

	if _, err := uc.repo.GetProfessional(ctx, negocioID, professionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	return uc.repo.ListWorkingHours(ctx, negocioID, professionalID)
}

func (uc *ManageWorkingHours) Replace(
	ctx context.Context,
	negocioID, professionalID uint,
	inputs []WorkingHoursInput,
) ([]models.WorkingHours, error) {

	if _, err := uc.repo.GetProfessional(ctx, negocioID, professionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	hours := make([]models.WorkingHours, 0, len(inputs))
	for _, in := range inputs {
		wh, err := buildWindow(negocioID, professionalID, in)
		if err != nil {
			return nil, err
		}
		hours = append(hours, *wh)
	}

	if err := validateNoOverlap(hours); err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, negocioID, professionalID, hours); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, negocioID, professionalID)

	uc.audit.Dispatch(audit.Event{
		NegocioID: negocioID,
		Action:    "working_hours_replaced",
		Entity:    "working_hours",
		Metadata:  map[string]any{"professional_id": professionalID, "windows": len(hours)},
	})

	return uc.repo.ListWorkingHours(ctx, negocioID, professionalID)
}

func buildWindow(negocioID, professionalID uint, in WorkingHoursInput) (*models.WorkingHours, error) {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return nil, httperr.ErrBusiness("invalid_day_of_week")
	}

	start, err := booking.ParseClock(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time_format")
	}
	end, err := booking.ParseClock(in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time_format")
	}
	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	wh := &models.WorkingHours{
		NegocioID:      negocioID,
		ProfessionalID: professionalID,
		DayOfWeek:      in.DayOfWeek,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		IsRecurring:    in.IsRecurring,
	}

	if !in.IsRecurring {
		sd, err := booking.ParseDate(in.StartDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
		ed, err := booking.ParseDate(in.EndDate)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
		if ed.Before(*sd) {
			return nil, httperr.ErrBusiness("invalid_date_range")
		}
		wh.StartDate = sd
		wh.EndDate = ed
	}

	return wh, nil
}

// validateNoOverlap rechaza ventanas recurrentes que se pisen dentro
// del mismo día. Las excepciones acotadas por fecha no se cruzan entre
// sí acá: pueden convivir en rangos de fechas distintos.
func validateNoOverlap(hours []models.WorkingHours) error {
	for i := range hours {
		if !hours[i].IsRecurring {
			continue
		}
		for j := i + 1; j < len(hours); j++ {
			if !hours[j].IsRecurring || hours[i].DayOfWeek != hours[j].DayOfWeek {
				continue
			}
			if hours[i].StartTime < hours[j].EndTime && hours[j].StartTime < hours[i].EndTime {
				return httperr.ErrBusiness("overlapping_windows")
			}
		}
	}
	return nil
}
