package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/catalog"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

type fakeCatalogRepo struct {
	negocios      map[string]*models.Negocio
	services      map[uint]*models.Service
	professionals map[uint]*models.Professional
	nextID        uint
}

var _ domain.Repository = (*fakeCatalogRepo)(nil)

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		negocios: map[string]*models.Negocio{
			"barberia-sur": {ID: 1, Name: "Barbería Sur", Slug: "barberia-sur"},
		},
		services:      map[uint]*models.Service{},
		professionals: map[uint]*models.Professional{},
		nextID:        1,
	}
}

func (f *fakeCatalogRepo) GetNegocioBySlug(_ context.Context, slug string) (*models.Negocio, error) {
	if n, ok := f.negocios[slug]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepo) ListServices(_ context.Context, negocioID uint, onlyActive bool) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.NegocioID != negocioID {
			continue
		}
		if onlyActive && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetService(_ context.Context, negocioID, serviceID uint) (*models.Service, error) {
	if s, ok := f.services[serviceID]; ok && s.NegocioID == negocioID {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepo) CreateService(_ context.Context, svc *models.Service) error {
	svc.ID = f.nextID
	f.nextID++
	cp := *svc
	f.services[svc.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) UpdateService(_ context.Context, svc *models.Service) error {
	cp := *svc
	f.services[svc.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) ListProfessionals(_ context.Context, negocioID uint, onlyAvailable bool) ([]models.Professional, error) {
	var out []models.Professional
	for _, p := range f.professionals {
		if p.NegocioID != negocioID {
			continue
		}
		if onlyAvailable && !p.IsAvailable {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetProfessional(_ context.Context, negocioID, professionalID uint) (*models.Professional, error) {
	if p, ok := f.professionals[professionalID]; ok && p.NegocioID == negocioID {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepo) UpdateProfessional(_ context.Context, prof *models.Professional) error {
	cp := *prof
	f.professionals[prof.ID] = &cp
	return nil
}

func (f *fakeCatalogRepo) addProfessional(negocioID uint, available bool) uint {
	id := f.nextID
	f.nextID++
	f.professionals[id] = &models.Professional{ID: id, NegocioID: negocioID, UserID: id, IsAvailable: available}
	return id
}

// --------------------------------------------------
// Servicios
// --------------------------------------------------

func TestServices_CreateAndUpdate(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewManageServices(repo, nil)

	svc, err := uc.Create(context.Background(), 1, ServiceInput{
		Name:            "Corte",
		DurationMinutes: 30,
		Price:           2500,
	})
	require.NoError(t, err)
	assert.NotZero(t, svc.ID)
	assert.True(t, svc.IsActive)

	svc, err = uc.Update(context.Background(), 1, svc.ID, ServiceInput{
		Name:            "Corte y barba",
		DurationMinutes: 45,
		Price:           3500,
	})
	require.NoError(t, err)
	assert.Equal(t, "Corte y barba", svc.Name)
	assert.Equal(t, 45, svc.DurationMinutes)
}

func TestServices_Validation(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewManageServices(repo, nil)

	cases := []struct {
		name string
		in   ServiceInput
		code string
	}{
		{"sin nombre", ServiceInput{DurationMinutes: 30, Price: 100}, "service_name_required"},
		{"duración cero", ServiceInput{Name: "Corte", DurationMinutes: 0, Price: 100}, "invalid_duration"},
		{"duración negativa", ServiceInput{Name: "Corte", DurationMinutes: -15, Price: 100}, "invalid_duration"},
		{"precio negativo", ServiceInput{Name: "Corte", DurationMinutes: 30, Price: -1}, "invalid_price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), 1, tc.in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "esperaba %s, fue %v", tc.code, err)
		})
	}
}

func TestServices_FreeServiceAllowed(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewManageServices(repo, nil)

	svc, err := uc.Create(context.Background(), 1, ServiceInput{
		Name:            "Consulta inicial",
		DurationMinutes: 30,
		Price:           0,
	})
	require.NoError(t, err)
	assert.Zero(t, svc.Price)
}

func TestServices_DeactivateIsSoftAndIdempotent(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewManageServices(repo, nil)

	svc, err := uc.Create(context.Background(), 1, ServiceInput{Name: "Corte", DurationMinutes: 30, Price: 100})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), 1, svc.ID))
	require.NoError(t, uc.Deactivate(context.Background(), 1, svc.ID))

	// sigue existiendo para el administrador, no para el público
	all, err := uc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	public := NewPublicCatalog(repo)
	visible, err := public.Services(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestServices_UpdateUnknown(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewManageServices(repo, nil)

	_, err := uc.Update(context.Background(), 1, 99, ServiceInput{Name: "Corte", DurationMinutes: 30})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

// --------------------------------------------------
// Catálogo público
// --------------------------------------------------

func TestPublicCatalog_Summary(t *testing.T) {
	repo := newFakeCatalogRepo()
	admin := NewManageServices(repo, nil)

	_, err := admin.Create(context.Background(), 1, ServiceInput{Name: "Corte", DurationMinutes: 30, Price: 100})
	require.NoError(t, err)
	old, err := admin.Create(context.Background(), 1, ServiceInput{Name: "Viejo", DurationMinutes: 30, Price: 100})
	require.NoError(t, err)
	require.NoError(t, admin.Deactivate(context.Background(), 1, old.ID))

	repo.addProfessional(1, true)
	repo.addProfessional(1, false)

	public := NewPublicCatalog(repo)
	summary, err := public.Summary(context.Background(), "barberia-sur")
	require.NoError(t, err)

	assert.Equal(t, uint(1), summary.Negocio.ID)
	require.Len(t, summary.Services, 1)
	assert.Equal(t, "Corte", summary.Services[0].Name)
	require.Len(t, summary.Professionals, 1)
	assert.True(t, summary.Professionals[0].IsAvailable)
}

func TestPublicCatalog_UnknownSlug(t *testing.T) {
	public := NewPublicCatalog(newFakeCatalogRepo())

	_, err := public.Summary(context.Background(), "no-existe")
	assert.True(t, httperr.IsBusiness(err, "negocio_not_found"))

	_, err = public.Negocio(context.Background(), "no-existe")
	assert.True(t, httperr.IsBusiness(err, "negocio_not_found"))
}

// --------------------------------------------------
// Profesionales
// --------------------------------------------------

func TestProfessionals_Update(t *testing.T) {
	repo := newFakeCatalogRepo()
	id := repo.addProfessional(1, true)
	uc := NewManageProfessionals(repo, nil, nil)

	off := false
	prof, err := uc.Update(context.Background(), 1, id, ProfessionalInput{
		Bio:         "Especialista en barba",
		IsAvailable: &off,
	})
	require.NoError(t, err)
	assert.Equal(t, "Especialista en barba", prof.Bio)
	assert.False(t, prof.IsAvailable)

	// sin puntero la disponibilidad queda como estaba
	prof, err = uc.Update(context.Background(), 1, id, ProfessionalInput{Bio: "Otra bio"})
	require.NoError(t, err)
	assert.False(t, prof.IsAvailable)
}

func TestProfessionals_UpdateCrossTenant(t *testing.T) {
	repo := newFakeCatalogRepo()
	id := repo.addProfessional(1, true)
	uc := NewManageProfessionals(repo, nil, nil)

	_, err := uc.Update(context.Background(), 2, id, ProfessionalInput{Bio: "x"})
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

func TestProfessionals_SetAvailability(t *testing.T) {
	repo := newFakeCatalogRepo()
	id := repo.addProfessional(1, true)
	uc := NewManageProfessionals(repo, nil, nil)

	prof, err := uc.SetAvailability(context.Background(), 1, id, false)
	require.NoError(t, err)
	assert.False(t, prof.IsAvailable)

	// idempotente: repetir el mismo estado no falla
	prof, err = uc.SetAvailability(context.Background(), 1, id, false)
	require.NoError(t, err)
	assert.False(t, prof.IsAvailable)

	prof, err = uc.SetAvailability(context.Background(), 1, id, true)
	require.NoError(t, err)
	assert.True(t, prof.IsAvailable)

	// la bio no se toca
	assert.Empty(t, prof.Bio)
}

func TestProfessionals_SetPhoto(t *testing.T) {
	repo := newFakeCatalogRepo()
	id := repo.addProfessional(1, true)
	uc := NewManageProfessionals(repo, nil, nil)

	prof, err := uc.SetPhoto(context.Background(), 1, id, "https://cdn.example.com/p.webp")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/p.webp", prof.ProfilePictureURL)
}
