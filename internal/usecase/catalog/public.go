package catalog

import (
	"context"

	domain "github.com/odremano/OBProyect/internal/domain/catalog"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// ======================================================
// USE CASE — catálogo público
// ======================================================

// NegocioSummary es la carta de presentación pública del negocio,
// resuelta por slug, sin autenticación.
type NegocioSummary struct {
	Negocio       *models.Negocio       `json:"negocio"`
	Services      []models.Service      `json:"services"`
	Professionals []models.Professional `json:"professionals"`
}

// PublicCatalog expone solo lo reservable: servicios activos y
// profesionales disponibles.
type PublicCatalog struct {
	repo domain.Repository
}

func NewPublicCatalog(repo domain.Repository) *PublicCatalog {
	return &PublicCatalog{repo: repo}
}

func (uc *PublicCatalog) Negocio(
	ctx context.Context,
	slug string,
) (*models.Negocio, error) {

	negocio, err := uc.repo.GetNegocioBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("negocio_not_found")
	}
	return negocio, nil
}

func (uc *PublicCatalog) Summary(
	ctx context.Context,
	slug string,
) (*NegocioSummary, error) {

	negocio, err := uc.repo.GetNegocioBySlug(ctx, slug)
	if err != nil {
		return nil, httperr.ErrBusiness("negocio_not_found")
	}

	services, err := uc.repo.ListServices(ctx, negocio.ID, true)
	if err != nil {
		return nil, err
	}

	professionals, err := uc.repo.ListProfessionals(ctx, negocio.ID, true)
	if err != nil {
		return nil, err
	}

	return &NegocioSummary{
		Negocio:       negocio,
		Services:      services,
		Professionals: professionals,
	}, nil
}

func (uc *PublicCatalog) Services(
	ctx context.Context,
	negocioID uint,
) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, negocioID, true)
}

func (uc *PublicCatalog) Professionals(
	ctx context.Context,
	negocioID uint,
) ([]models.Professional, error) {
	return uc.repo.ListProfessionals(ctx, negocioID, true)
}
