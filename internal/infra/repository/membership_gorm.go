package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/membership"
	"github.com/odremano/OBProyect/internal/models"
)

type MembershipGormRepository struct {
	db *gorm.DB
}

func NewMembershipGormRepository(db *gorm.DB) *MembershipGormRepository {
	return &MembershipGormRepository{db: db}
}

var _ domain.Repository = (*MembershipGormRepository)(nil)

func (r *MembershipGormRepository) GetUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MembershipGormRepository) GetMembership(
	ctx context.Context,
	negocioID uint,
	userID uint,
) (*models.Membership, error) {

	var m models.Membership
	if err := r.db.WithContext(ctx).
		Where("negocio_id = ? AND user_id = ?", negocioID, userID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipGormRepository) SaveMembership(
	ctx context.Context,
	m *models.Membership,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MembershipGormRepository) ListMemberships(
	ctx context.Context,
	negocioID uint,
) ([]models.Membership, error) {

	var ms []models.Membership
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("negocio_id = ?", negocioID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

func (r *MembershipGormRepository) GetProfessionalByUser(
	ctx context.Context,
	negocioID uint,
	userID uint,
) (*models.Professional, error) {

	var prof models.Professional
	if err := r.db.WithContext(ctx).
		Where("negocio_id = ? AND user_id = ?", negocioID, userID).
		First(&prof).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

func (r *MembershipGormRepository) SaveProfessional(
	ctx context.Context,
	prof *models.Professional,
) error {
	return r.db.WithContext(ctx).Save(prof).Error
}
