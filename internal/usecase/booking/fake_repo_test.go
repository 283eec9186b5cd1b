package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/booking"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

// fakeRepo es una implementación en memoria del repositorio de reservas.
// CreateAppointment serializa con el mutex y re-chequea conflicto, igual
// que la implementación real lo hace con la transacción y el constraint.
type fakeRepo struct {
	mu sync.Mutex

	negocios      map[uint]*models.Negocio
	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	workingHours  []models.WorkingHours
	timeBlocks    []models.TimeBlock
	appointments  []*models.Appointment

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		negocios:      map[uint]*models.Negocio{},
		professionals: map[uint]*models.Professional{},
		services:      map[uint]*models.Service{},
		nextID:        1,
	}
}

func (f *fakeRepo) addNegocio(id uint, slug string) {
	f.negocios[id] = &models.Negocio{ID: id, Name: slug, Slug: slug}
}

func (f *fakeRepo) addProfessional(id, negocioID uint, available bool) {
	f.professionals[id] = &models.Professional{
		ID: id, NegocioID: negocioID, UserID: id, IsAvailable: available,
	}
}

func (f *fakeRepo) addService(id, negocioID uint, minutes int, active bool) {
	f.services[id] = &models.Service{
		ID: id, NegocioID: negocioID, Name: "corte",
		DurationMinutes: minutes, Price: 100, IsActive: active,
	}
}

func (f *fakeRepo) addWindow(negocioID, profID uint, day int, start, end string) {
	f.workingHours = append(f.workingHours, models.WorkingHours{
		NegocioID: negocioID, ProfessionalID: profID,
		DayOfWeek: day, StartTime: start, EndTime: end, IsRecurring: true,
	})
}

func (f *fakeRepo) addException(negocioID, profID uint, day int, start, end string, from, to time.Time) {
	f.workingHours = append(f.workingHours, models.WorkingHours{
		NegocioID: negocioID, ProfessionalID: profID,
		DayOfWeek: day, StartTime: start, EndTime: end,
		IsRecurring: false, StartDate: &from, EndDate: &to,
	})
}

func (f *fakeRepo) addBlock(negocioID, profID uint, start, end time.Time) {
	f.timeBlocks = append(f.timeBlocks, models.TimeBlock{
		NegocioID: negocioID, ProfessionalID: profID,
		StartDatetime: start, EndDatetime: end,
	})
}

func (f *fakeRepo) addAppointment(negocioID, profID, clientID uint, start, end time.Time, status string) *models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap := &models.Appointment{
		ID: f.nextID, NegocioID: negocioID,
		ProfessionalID: profID, ClientID: clientID, ServiceID: 1,
		StartDatetime: start, EndDatetime: end, Status: status,
	}
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return ap
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (f *fakeRepo) GetNegocioByID(_ context.Context, id uint) (*models.Negocio, error) {
	if n, ok := f.negocios[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetNegocioBySlug(_ context.Context, slug string) (*models.Negocio, error) {
	for _, n := range f.negocios {
		if n.Slug == slug {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetProfessional(_ context.Context, negocioID, id uint) (*models.Professional, error) {
	if p, ok := f.professionals[id]; ok && p.NegocioID == negocioID {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetService(_ context.Context, negocioID, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok && s.NegocioID == negocioID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListWorkingHours(_ context.Context, negocioID, profID uint, weekday int, date time.Time) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.workingHours {
		if wh.NegocioID != negocioID || wh.ProfessionalID != profID || wh.DayOfWeek != weekday {
			continue
		}
		if !wh.IsRecurring {
			if wh.StartDate == nil || wh.EndDate == nil {
				continue
			}
			if date.Before(*wh.StartDate) || date.After(*wh.EndDate) {
				continue
			}
		}
		out = append(out, wh)
	}
	return out, nil
}

func (f *fakeRepo) ListTimeBlocksForDay(_ context.Context, negocioID, profID uint, dayStart, dayEnd time.Time) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range f.timeBlocks {
		if b.NegocioID == negocioID && b.ProfessionalID == profID &&
			b.StartDatetime.Before(dayEnd) && b.EndDatetime.After(dayStart) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveAppointmentsForDay(_ context.Context, negocioID, profID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.NegocioID == negocioID && ap.ProfessionalID == profID &&
			domain.IsActive(domain.Status(ap.Status)) &&
			ap.StartDatetime.Before(dayEnd) && ap.EndDatetime.After(dayStart) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.appointments {
		if existing.ProfessionalID == ap.ProfessionalID &&
			domain.IsActive(domain.Status(existing.Status)) &&
			domain.Overlaps(ap.StartDatetime, ap.EndDatetime, existing.StartDatetime, existing.EndDatetime) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.appointments {
		if existing.ID == ap.ID {
			cp := *ap
			f.appointments[i] = &cp
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointmentForClient(_ context.Context, negocioID, apID, clientID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.ID == apID && ap.NegocioID == negocioID && ap.ClientID == clientID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetAppointmentInNegocio(_ context.Context, negocioID, apID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.ID == apID && ap.NegocioID == negocioID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, negocioID, clientID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.NegocioID == negocioID && ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, negocioID, profID uint, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.NegocioID == negocioID && ap.ProfessionalID == profID &&
			!ap.StartDatetime.Before(start) && ap.StartDatetime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) byStatus(status string) []*models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.Appointment
	for _, ap := range f.appointments {
		if ap.Status == status {
			out = append(out, ap)
		}
	}
	return out
}
