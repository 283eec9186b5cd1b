package booking

import (
	"context"
	"time"

	"github.com/odremano/OBProyect/internal/cache"
	"github.com/odremano/OBProyect/internal/clock"
	domain "github.com/odremano/OBProyect/internal/domain/booking"
)

// AvailableDays calcula los días del mes con al menos un slot libre,
// para pintar el heatmap del calendario. Delega el chequeo de cada día
// en HasAvailability y cachea el booleano por día en redis.
type AvailableDays struct {
	check *HasAvailability
	clock clock.Clock
	cache *cache.AvailabilityCache
}

func NewAvailableDays(repo domain.Repository, clk clock.Clock, c *cache.AvailabilityCache) *AvailableDays {
	return &AvailableDays{check: NewHasAvailability(repo, clk), clock: clk, cache: c}
}

func (uc *AvailableDays) Execute(
	ctx context.Context,
	negocioID uint,
	professionalID uint,
	serviceID uint,
	year int,
	month int,
) ([]int, error) {

	now := uc.clock.Now()
	todayStart, _ := domain.DayBounds(now)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	next := first.AddDate(0, 1, 0)

	days := []int{}
	for date := first; date.Before(next); date = date.AddDate(0, 0, 1) {
		if date.Before(todayStart) {
			continue
		}

		if has, ok := uc.cache.Get(ctx, negocioID, professionalID, serviceID, date); ok {
			if has {
				days = append(days, date.Day())
			}
			continue
		}

		has, err := uc.check.Execute(ctx, domain.AvailabilityInput{
			NegocioID:      negocioID,
			ProfessionalID: professionalID,
			ServiceID:      serviceID,
			Date:           date,
		})
		if err != nil {
			return nil, err
		}
		uc.cache.Set(ctx, negocioID, professionalID, serviceID, date, has)

		if has {
			days = append(days, date.Day())
		}
	}

	return days, nil
}
