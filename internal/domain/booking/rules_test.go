package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odremano/OBProyect/internal/models"
)

func ts(h, m int) time.Time {
	return time.Date(2026, 9, 7, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"separados", ts(9, 0), ts(10, 0), ts(11, 0), ts(12, 0), false},
		{"contenido", ts(9, 0), ts(12, 0), ts(10, 0), ts(11, 0), true},
		{"solapado parcial", ts(9, 0), ts(10, 30), ts(10, 0), ts(11, 0), true},
		{"identicos", ts(9, 0), ts(10, 0), ts(9, 0), ts(10, 0), true},
		{"borde compartido fin-inicio", ts(9, 0), ts(10, 0), ts(10, 0), ts(11, 0), false},
		{"borde compartido inicio-fin", ts(10, 0), ts(11, 0), ts(9, 0), ts(10, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// la intersección es simétrica
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestISOWeekday(t *testing.T) {
	// 7 de septiembre de 2026 es lunes
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, ISOWeekday(monday.AddDate(0, 0, i)))
	}
}

func TestDeriveEnd(t *testing.T) {
	svc := &models.Service{DurationMinutes: 45}
	assert.Equal(t, ts(9, 45), DeriveEnd(ts(9, 0), svc))
}

func TestAtClock(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	got, err := AtClock(date, "14:30")
	require.NoError(t, err)
	assert.Equal(t, ts(14, 30), got)

	_, err = AtClock(date, "25:00")
	assert.Error(t, err)

	_, err = AtClock(date, "9am")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(ts(15, 42))
	assert.Equal(t, ts(0, 0), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus("pending"))
	assert.Equal(t, StatusConfirmed, InitialStatus("confirmed"))
	// cualquier otra cosa cae al default seguro
	assert.Equal(t, StatusPending, InitialStatus("cancelled"))
	assert.Equal(t, StatusPending, InitialStatus(""))
}

func TestCanClientCancel(t *testing.T) {
	ap := &models.Appointment{
		Status:        "pending",
		StartDatetime: ts(12, 0),
	}

	assert.True(t, CanClientCancel(ap, ts(9, 0)))
	assert.True(t, CanClientCancel(ap, ts(10, 0)))
	assert.False(t, CanClientCancel(ap, ts(10, 1)))

	ap.Status = "completed"
	assert.False(t, CanClientCancel(ap, ts(9, 0)))
}
