package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/catalog"
	"github.com/odremano/OBProyect/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

var _ domain.Repository = (*CatalogGormRepository)(nil)

func (r *CatalogGormRepository) GetNegocioBySlug(
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
// Servicios
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	negocioID uint,
	onlyActive bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("negocio_id = ?", negocioID)
	if onlyActive {
		q = q.Where("is_active = true")
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(
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

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

// --------------------------------------------------
// Profesionales
// --------------------------------------------------

func (r *CatalogGormRepository) ListProfessionals(
	ctx context.Context,
	negocioID uint,
	onlyAvailable bool,
) ([]models.Professional, error) {

	q := r.db.WithContext(ctx).
		Preload("User").
		Where("negocio_id = ?", negocioID)
	if onlyAvailable {
		q = q.Where("is_available = true")
	}

	var profs []models.Professional
	if err := q.Find(&profs).Error; err != nil {
		return nil, err
	}
	return profs, nil
}

func (r *CatalogGormRepository) GetProfessional(
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

func (r *CatalogGormRepository) UpdateProfessional(
	ctx context.Context,
	prof *models.Professional,
) error {
	return r.db.WithContext(ctx).Save(prof).Error
}
