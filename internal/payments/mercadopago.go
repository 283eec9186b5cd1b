package payments

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// Pagos — Mercado Pago
// ======================================================

// Provider genera links de pago para turnos. Es opcional: sin access
// token configurado el sistema funciona igual, solo que las reservas
// no llevan link de pago.
type Provider struct {
	client preference.Client
}

func NewProvider(accessToken string) (*Provider, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("configuración de mercado pago: %w", err)
	}
	return &Provider{client: preference.NewClient(cfg)}, nil
}

// CheckoutLink crea una preferencia de pago por el precio del servicio
// y devuelve la URL de checkout. La referencia externa es la referencia
// pública del turno, para conciliar después.
func (p *Provider) CheckoutLink(
	ctx context.Context,
	ap *models.Appointment,
	svc *models.Service,
) (string, error) {

	if svc.Price <= 0 {
		return "", nil
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     svc.Name,
				Quantity:  1,
				UnitPrice: svc.Price,
			},
		},
		ExternalReference: ap.Reference,
	}

	resource, err := p.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("preferencia de pago: %w", err)
	}
	return resource.InitPoint, nil
}
