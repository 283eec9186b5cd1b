package booking

import (
	"context"

	"github.com/odremano/OBProyect/internal/clock"
	domain "github.com/odremano/OBProyect/internal/domain/booking"
)

// HasAvailability es la variante de solo-existencia del generador de slots:
// corta en el primer slot libre en vez de enumerarlos todos. Mismo contrato,
// resultado booleano. La usa la vista de calendario mensual.
type HasAvailability struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewHasAvailability(repo domain.Repository, clk clock.Clock) *HasAvailability {
	return &HasAvailability{repo: repo, clock: clk}
}

func (uc *HasAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (bool, error) {

	svc, err := lookupOffering(ctx, uc.repo, in)
	if err != nil {
		return false, err
	}

	slots, err := availableSlots(ctx, uc.repo, uc.clock, in.NegocioID, in.ProfessionalID, svc, in.Date, true)
	if err != nil {
		return false, err
	}
	return len(slots) > 0, nil
}
