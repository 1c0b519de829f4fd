package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisondupain/boulangerie-api/models"
)

func TestComputeTodayStatus(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		wantOpen   bool
		wantStatus string
	}{
		{"mid morning", monday.Add(10 * time.Hour), true, StatusOpen},
		{"at opening", monday.Add(7 * time.Hour), true, StatusOpen},
		{"closing soon", monday.Add(12*time.Hour + 10*time.Minute), true, StatusClosingSoon},
		{"exactly thirty minutes before close", monday.Add(12 * time.Hour), true, StatusClosingSoon},
		{"at morning end", monday.Add(12*time.Hour + 30*time.Minute), false, StatusBreak},
		{"lunch break", monday.Add(13 * time.Hour), false, StatusBreak},
		{"afternoon", monday.Add(16 * time.Hour), true, StatusOpen},
		{"after closing", monday.Add(20 * time.Hour), false, StatusClosed},
		{"before opening", monday.Add(6 * time.Hour), false, StatusClosed},
	}

	engine := NewEngine(defaultStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := engine.ComputeTodayStatus(tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOpen, status.Open)
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, "lundi", status.Day)
		})
	}
}

func TestComputeTodayStatusClosedDay(t *testing.T) {
	engine := NewEngine(defaultStore())
	sunday := monday.AddDate(0, 0, -1).Add(10 * time.Hour)

	status, err := engine.ComputeTodayStatus(sunday)
	require.NoError(t, err)

	assert.False(t, status.Open)
	assert.Equal(t, StatusClosed, status.Status)
	assert.Equal(t, "Boulangerie fermée le dimanche", status.Message)

	// Consistency with the slot computation: closed here means zero slots there
	result, err := engine.ComputeAvailableSlots(sunday, "", sunday)
	require.NoError(t, err)
	assert.Empty(t, result.Slots)
}

func TestComputeTodayStatusFullClosure(t *testing.T) {
	store := defaultStore()
	store.closures = []models.ExceptionalClosure{{
		StartDate:   monday,
		EndDate:     monday,
		Active:      true,
		FullClosure: true,
		Message:     "Fermé pour congés",
	}}

	engine := NewEngine(store)
	status, err := engine.ComputeTodayStatus(monday.Add(10 * time.Hour))
	require.NoError(t, err)

	assert.False(t, status.Open)
	assert.Equal(t, StatusClosed, status.Status)
	assert.Equal(t, "Fermé pour congés", status.Message)
}

func TestComputeTodayStatusSingleWindow(t *testing.T) {
	store := defaultStore()
	day := store.hours[time.Monday]
	day.AfternoonStart = ""
	day.AfternoonEnd = ""
	store.hours[time.Monday] = day

	engine := NewEngine(store)
	status, err := engine.ComputeTodayStatus(monday.Add(14 * time.Hour))
	require.NoError(t, err)

	// no afternoon window configured, so after the morning it is closed, not a break
	assert.Equal(t, StatusClosed, status.Status)
}
