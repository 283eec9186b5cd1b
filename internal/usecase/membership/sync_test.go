package membership

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/membership"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

type fakeMembershipRepo struct {
	users         map[uint]*models.User
	memberships   map[string]*models.Membership
	professionals map[string]*models.Professional
	nextID        uint
}

var _ domain.Repository = (*fakeMembershipRepo)(nil)

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{
		users: map[uint]*models.User{
			5: {ID: 5, Username: "carla", Role: models.RoleCliente, IsActive: true},
		},
		memberships:   map[string]*models.Membership{},
		professionals: map[string]*models.Professional{},
		nextID:        1,
	}
}

func key(negocioID, userID uint) string {
	return fmt.Sprintf("%d:%d", negocioID, userID)
}

func (f *fakeMembershipRepo) GetUser(_ context.Context, userID uint) (*models.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) GetMembership(_ context.Context, negocioID, userID uint) (*models.Membership, error) {
	if m, ok := f.memberships[key(negocioID, userID)]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) SaveMembership(_ context.Context, m *models.Membership) error {
	if m.ID == 0 {
		m.ID = f.nextID
		f.nextID++
	}
	cp := *m
	f.memberships[key(m.NegocioID, m.UserID)] = &cp
	return nil
}

func (f *fakeMembershipRepo) ListMemberships(_ context.Context, negocioID uint) ([]models.Membership, error) {
	var out []models.Membership
	for _, m := range f.memberships {
		if m.NegocioID == negocioID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) GetProfessionalByUser(_ context.Context, negocioID, userID uint) (*models.Professional, error) {
	if p, ok := f.professionals[key(negocioID, userID)]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) SaveProfessional(_ context.Context, prof *models.Professional) error {
	if prof.ID == 0 {
		prof.ID = f.nextID
		f.nextID++
	}
	cp := *prof
	f.professionals[key(prof.NegocioID, prof.UserID)] = &cp
	return nil
}

func TestSetRole_ProfessionalCreatesProfile(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	m, err := uc.Execute(context.Background(), 1, 5, models.RoleProfesional)
	require.NoError(t, err)
	assert.Equal(t, models.RoleProfesional, m.Role)
	assert.True(t, m.IsActive)

	prof, err := repo.GetProfessionalByUser(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, prof.IsAvailable)
}

func TestSetRole_DemotionDeactivatesProfile(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 5, models.RoleProfesional)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, 5, models.RoleCliente)
	require.NoError(t, err)

	// el perfil sigue existiendo pero apagado
	prof, err := repo.GetProfessionalByUser(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, prof.IsAvailable)
}

func TestSetRole_PromotionReactivatesExistingProfile(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 5, models.RoleProfesional)
	require.NoError(t, err)
	original, _ := repo.GetProfessionalByUser(context.Background(), 1, 5)

	_, err = uc.Execute(context.Background(), 1, 5, models.RoleCliente)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, 5, models.RoleProfesional)
	require.NoError(t, err)

	prof, err := repo.GetProfessionalByUser(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, prof.IsAvailable)
	assert.Equal(t, original.ID, prof.ID, "se reactiva el perfil, no se crea otro")
}

func TestSetRole_AdminRoleDoesNotCreateProfile(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 5, models.RoleAdministrador)
	require.NoError(t, err)

	_, err = repo.GetProfessionalByUser(context.Background(), 1, 5)
	assert.Error(t, err)
}

func TestSetRole_UpdatesExistingMembership(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	first, err := uc.Execute(context.Background(), 1, 5, models.RoleCliente)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), 1, 5, models.RoleAdministrador)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.RoleAdministrador, second.Role)

	members, err := repo.ListMemberships(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestSetRole_InvalidRole(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 5, "dueño")
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
}

func TestSetRole_UnknownUser(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 99, models.RoleCliente)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestSetRole_SameUserInTwoNegocios(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewSetRole(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 5, models.RoleProfesional)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), 2, 5, models.RoleCliente)
	require.NoError(t, err)

	// la democión en un negocio no toca el perfil del otro
	prof, err := repo.GetProfessionalByUser(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, prof.IsAvailable)

	_, err = repo.GetProfessionalByUser(context.Background(), 2, 5)
	assert.Error(t, err)
}
