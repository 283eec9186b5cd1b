package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/identity"
	"github.com/odremano/OBProyect/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

var _ domain.Repository = (*IdentityGormRepository)(nil)

func (r *IdentityGormRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) GetUserByID(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *IdentityGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *IdentityGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *IdentityGormRepository) RegisterNegocio(
	ctx context.Context,
	n *models.Negocio,
	admin *models.User,
	m *models.Membership,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return err
		}

		admin.NegocioID = n.ID
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		m.NegocioID = n.ID
		m.UserID = admin.ID
		return tx.Create(m).Error
	})
}
