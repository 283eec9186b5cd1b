package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odremano/OBProyect/internal/models"
)

func TestCheckoutLink_FreeServiceSkipsCheckout(t *testing.T) {
	p, err := NewProvider("TEST-1234567890")
	require.NoError(t, err)

	// un servicio sin precio no genera preferencia ni sale a la red
	link, err := p.CheckoutLink(
		context.Background(),
		&models.Appointment{Reference: "ref-123"},
		&models.Service{Name: "Corte clásico", Price: 0},
	)
	require.NoError(t, err)
	assert.Empty(t, link)
}
