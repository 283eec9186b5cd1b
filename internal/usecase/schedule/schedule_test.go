package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/odremano/OBProyect/internal/domain/schedule"
	"github.com/odremano/OBProyect/internal/httperr"
	"github.com/odremano/OBProyect/internal/models"
)

type fakeScheduleRepo struct {
	professionals map[uint]*models.Professional
	workingHours  []models.WorkingHours
	timeBlocks    []models.TimeBlock
	nextID        uint
}

var _ domain.Repository = (*fakeScheduleRepo)(nil)

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		professionals: map[uint]*models.Professional{
			10: {ID: 10, NegocioID: 1, UserID: 10, IsAvailable: true},
		},
		nextID: 1,
	}
}

func (f *fakeScheduleRepo) GetProfessional(_ context.Context, negocioID, id uint) (*models.Professional, error) {
	if p, ok := f.professionals[id]; ok && p.NegocioID == negocioID {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepo) ListWorkingHours(_ context.Context, negocioID, profID uint) ([]models.WorkingHours, error) {
	var out []models.WorkingHours
	for _, wh := range f.workingHours {
		if wh.NegocioID == negocioID && wh.ProfessionalID == profID {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ReplaceWorkingHours(_ context.Context, negocioID, profID uint, hours []models.WorkingHours) error {
	var kept []models.WorkingHours
	for _, wh := range f.workingHours {
		if wh.NegocioID != negocioID || wh.ProfessionalID != profID {
			kept = append(kept, wh)
		}
	}
	f.workingHours = append(kept, hours...)
	return nil
}

func (f *fakeScheduleRepo) ListTimeBlocks(_ context.Context, negocioID, profID uint, from time.Time) ([]models.TimeBlock, error) {
	var out []models.TimeBlock
	for _, b := range f.timeBlocks {
		if b.NegocioID == negocioID && b.ProfessionalID == profID && b.EndDatetime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) CreateTimeBlock(_ context.Context, block *models.TimeBlock) error {
	block.ID = f.nextID
	f.nextID++
	f.timeBlocks = append(f.timeBlocks, *block)
	return nil
}

func (f *fakeScheduleRepo) GetTimeBlock(_ context.Context, negocioID, blockID uint) (*models.TimeBlock, error) {
	for _, b := range f.timeBlocks {
		if b.ID == blockID && b.NegocioID == negocioID {
			cp := b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepo) DeleteTimeBlock(_ context.Context, negocioID, blockID uint) error {
	for i, b := range f.timeBlocks {
		if b.ID == blockID && b.NegocioID == negocioID {
			f.timeBlocks = append(f.timeBlocks[:i], f.timeBlocks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// --------------------------------------------------
// Horarios semanales
// --------------------------------------------------

func TestReplaceWorkingHours_OK(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageWorkingHours(repo, nil, nil)

	hours, err := uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00", IsRecurring: true},
		{DayOfWeek: 0, StartTime: "14:00", EndTime: "18:00", IsRecurring: true},
		{DayOfWeek: 5, StartTime: "10:00", EndTime: "14:00", IsRecurring: true},
	})
	require.NoError(t, err)
	assert.Len(t, hours, 3)
}

func TestReplaceWorkingHours_IsTotalReplacement(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageWorkingHours(repo, nil, nil)

	_, err := uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00", IsRecurring: true},
	})
	require.NoError(t, err)

	hours, err := uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "12:00", IsRecurring: true},
	})
	require.NoError(t, err)

	require.Len(t, hours, 1)
	assert.Equal(t, 3, hours[0].DayOfWeek)
}

func TestReplaceWorkingHours_EmptyClearsWeek(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageWorkingHours(repo, nil, nil)

	_, err := uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00", IsRecurring: true},
	})
	require.NoError(t, err)

	hours, err := uc.Replace(context.Background(), 1, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, hours)
}

func TestReplaceWorkingHours_Validation(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageWorkingHours(repo, nil, nil)

	cases := []struct {
		name string
		in   WorkingHoursInput
		code string
	}{
		{"día inválido", WorkingHoursInput{DayOfWeek: 7, StartTime: "09:00", EndTime: "13:00", IsRecurring: true}, "invalid_day_of_week"},
		{"día negativo", WorkingHoursInput{DayOfWeek: -1, StartTime: "09:00", EndTime: "13:00", IsRecurring: true}, "invalid_day_of_week"},
		{"hora inválida", WorkingHoursInput{DayOfWeek: 0, StartTime: "9am", EndTime: "13:00", IsRecurring: true}, "invalid_time_format"},
		{"inicio igual al fin", WorkingHoursInput{DayOfWeek: 0, StartTime: "09:00", EndTime: "09:00", IsRecurring: true}, "invalid_time_range"},
		{"inicio después del fin", WorkingHoursInput{DayOfWeek: 0, StartTime: "14:00", EndTime: "09:00", IsRecurring: true}, "invalid_time_range"},
		{"excepción sin fechas", WorkingHoursInput{DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00", IsRecurring: false}, "invalid_date_range"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{tc.in})
			assert.True(t, httperr.IsBusiness(err, tc.code), "esperaba %s, fue %v", tc.code, err)
		})
	}
}

func TestReplaceWorkingHours_OverlappingWindowsRejected(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageWorkingHours(repo, nil, nil)

	_, err := uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00", IsRecurring: true},
		{DayOfWeek: 0, StartTime: "12:00", EndTime: "16:00", IsRecurring: true},
	})
	assert.True(t, httperr.IsBusiness(err, "overlapping_windows"))

	// mismos horarios en días distintos no se pisan
	_, err = uc.Replace(context.Background(), 1, 10, []WorkingHoursInput{
		{DayOfWeek: 0, StartTime: "09:00", EndTime: "13:00", IsRecurring: true},
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00", IsRecurring: true},
	})
	assert.NoError(t, err)
}

func TestReplaceWorkingHours_UnknownProfessional(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageWorkingHours(repo, nil, nil)

	_, err := uc.Replace(context.Background(), 1, 99, nil)
	assert.True(t, httperr.IsBusiness(err, "professional_not_found"))
}

// --------------------------------------------------
// Bloqueos
// --------------------------------------------------

func TestTimeBlocks_CreateListDelete(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageTimeBlocks(repo, nil, nil)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)

	block, err := uc.Create(context.Background(), 1, CreateTimeBlockInput{
		ProfessionalID: 10,
		StartDatetime:  start,
		EndDatetime:    start.Add(2 * time.Hour),
		Reason:         "trámite",
	})
	require.NoError(t, err)
	assert.NotZero(t, block.ID)

	blocks, err := uc.List(context.Background(), 1, 10, start.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	require.NoError(t, uc.Delete(context.Background(), 1, block.ID))

	blocks, err = uc.List(context.Background(), 1, 10, start.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestTimeBlocks_InvalidRange(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageTimeBlocks(repo, nil, nil)

	start := time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC)

	_, err := uc.Create(context.Background(), 1, CreateTimeBlockInput{
		ProfessionalID: 10,
		StartDatetime:  start,
		EndDatetime:    start,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))
}

func TestTimeBlocks_DeleteUnknown(t *testing.T) {
	repo := newFakeScheduleRepo()
	uc := NewManageTimeBlocks(repo, nil, nil)

	err := uc.Delete(context.Background(), 1, 99)
	assert.True(t, httperr.IsBusiness(err, "time_block_not_found"))
}
