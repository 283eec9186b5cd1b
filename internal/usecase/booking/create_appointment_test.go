package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
)

func setupCreate(t *testing.T) (*fakeRepo, *CreateAppointment) {
	t.Helper()

	repo := newFakeRepo()
	repo.addNegocio(1, "cortes-ya")
	repo.addProfessional(10, 1, true)
	repo.addService(20, 1, 30, true)
	repo.addWindow(1, 10, 0, "09:00", "17:00")

	return repo, NewCreateAppointment(repo, nil, nil, "pending")
}

func createInput(start time.Time) domain.CreateInput {
	return domain.CreateInput{
		NegocioID: 1, ClientID: 5, ProfessionalID: 10, ServiceID: 20,
		StartDatetime: start,
	}
}

func TestCreateAppointment_OK(t *testing.T) {
	_, uc := setupCreate(t)

	ap, err := uc.Execute(context.Background(), createInput(at(monday, "10:00")))
	require.NoError(t, err)

	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, at(monday, "10:30"), ap.EndDatetime)
	assert.NotEmpty(t, ap.Reference)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointment_ConfirmedPolicy(t *testing.T) {
	repo := newFakeRepo()
	repo.addNegocio(1, "cortes-ya")
	repo.addProfessional(10, 1, true)
	repo.addService(20, 1, 30, true)
	repo.addWindow(1, 10, 0, "09:00", "17:00")

	uc := NewCreateAppointment(repo, nil, nil, "confirmed")

	ap, err := uc.Execute(context.Background(), createInput(at(monday, "10:00")))
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
}

func TestCreateAppointment_EndDerivedFromService(t *testing.T) {
	repo := newFakeRepo()
	repo.addNegocio(1, "cortes-ya")
	repo.addProfessional(10, 1, true)
	repo.addService(20, 1, 45, true)
	repo.addWindow(1, 10, 0, "09:00", "17:00")

	uc := NewCreateAppointment(repo, nil, nil, "pending")

	ap, err := uc.Execute(context.Background(), createInput(at(monday, "09:00")))
	require.NoError(t, err)
	assert.Equal(t, at(monday, "09:45"), ap.EndDatetime)
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	repo, uc := setupCreate(t)
	repo.addAppointment(1, 10, 99, at(monday, "10:00"), at(monday, "10:30"), "pending")

	_, err := uc.Execute(context.Background(), createInput(at(monday, "10:15")))
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
}

func TestCreateAppointment_TouchingEdgesIsNotConflict(t *testing.T) {
	repo, uc := setupCreate(t)
	repo.addAppointment(1, 10, 99, at(monday, "10:00"), at(monday, "10:30"), "pending")

	_, err := uc.Execute(context.Background(), createInput(at(monday, "10:30")))
	assert.NoError(t, err)
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	_, uc := setupCreate(t)

	// 16:45+30 termina 17:15, fuera de la ventana
	_, err := uc.Execute(context.Background(), createInput(at(monday, "16:45")))
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	// día sin ventanas
	tuesday := monday.AddDate(0, 0, 1)
	_, err = uc.Execute(context.Background(), createInput(at(tuesday, "10:00")))
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateAppointment_Blocked(t *testing.T) {
	repo, uc := setupCreate(t)
	repo.addBlock(1, 10, at(monday, "14:00"), at(monday, "15:00"))

	_, err := uc.Execute(context.Background(), createInput(at(monday, "14:30")))
	assert.True(t, httperr.IsBusiness(err, "timeslot_blocked"))
}

func TestCreateAppointment_ProfessionalUnavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.addNegocio(1, "cortes-ya")
	repo.addProfessional(10, 1, false)
	repo.addService(20, 1, 30, true)
	repo.addWindow(1, 10, 0, "09:00", "17:00")

	uc := NewCreateAppointment(repo, nil, nil, "pending")

	_, err := uc.Execute(context.Background(), createInput(at(monday, "10:00")))
	assert.True(t, httperr.IsBusiness(err, "professional_unavailable"))
}

func TestCreateAppointment_ServiceInactive(t *testing.T) {
	repo := newFakeRepo()
	repo.addNegocio(1, "cortes-ya")
	repo.addProfessional(10, 1, true)
	repo.addService(20, 1, 30, false)
	repo.addWindow(1, 10, 0, "09:00", "17:00")

	uc := NewCreateAppointment(repo, nil, nil, "pending")

	_, err := uc.Execute(context.Background(), createInput(at(monday, "10:00")))
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}

func TestCreateAppointment_OtherTenantLooksMissing(t *testing.T) {
	repo, uc := setupCreate(t)
	repo.addNegocio(2, "otro")
	repo.addProfessional(11, 2, true)

	in := createInput(at(monday, "10:00"))
	in.ProfessionalID = 11

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

// Dos reservas simultáneas del mismo hueco: exactamente una gana.
func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	_, uc := setupCreate(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), createInput(at(monday, "11:00")))
		}(i)
	}
	wg.Wait()

	var okCount, conflictCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case httperr.IsBusiness(err, "slot_conflict"):
			conflictCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}

	assert.Equal(t, 1, okCount)
	assert.Equal(t, writers-1, conflictCount)
}
