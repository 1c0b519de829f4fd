package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisondupain/boulangerie-api/models"
)

type fakeStore struct {
	hours    map[time.Weekday]models.OpeningHours
	cfg      *models.SlotConfig
	delays   map[string]int
	closures []models.ExceptionalClosure
	booked   map[string]int64
}

func (f *fakeStore) LoadOpeningHours() (map[time.Weekday]models.OpeningHours, error) {
	return f.hours, nil
}

func (f *fakeStore) LoadSlotConfig() (*models.SlotConfig, error) {
	return f.cfg, nil
}

func (f *fakeStore) LoadPreparationDelays() (map[string]int, error) {
	return f.delays, nil
}

func (f *fakeStore) FindActiveClosures(date time.Time) ([]models.ExceptionalClosure, error) {
	return f.closures, nil
}

func (f *fakeStore) CountBookedOrders(ts time.Time) (int64, error) {
	return f.booked[ts.Format("2006-01-02 15:04")], nil
}

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func defaultStore() *fakeStore {
	return &fakeStore{
		hours: map[time.Weekday]models.OpeningHours{
			time.Monday: {
				DayOfWeek:      time.Monday,
				Open:           true,
				MorningStart:   "07:00",
				MorningEnd:     "12:30",
				AfternoonStart: "15:00",
				AfternoonEnd:   "19:00",
			},
			time.Sunday: {
				DayOfWeek: time.Sunday,
				Open:      false,
			},
		},
		cfg: &models.SlotConfig{
			IntervalMinutes:    15,
			MinimumLeadMinutes: 30,
			SimultaneousSlots:  3,
		},
		delays: map[string]int{
			"pains":  30,
			"autres": 15,
		},
		booked: map[string]int64{},
	}
}

func TestComputeAvailableSlotsMinimumNotice(t *testing.T) {
	engine := NewEngine(defaultStore())
	now := monday.Add(10 * time.Hour) // Monday 10:00

	result, err := engine.ComputeAvailableSlots(monday, "pains", now)
	require.NoError(t, err)

	require.NotEmpty(t, result.Slots)
	assert.Equal(t, "2025-06-02", result.Date)
	assert.Equal(t, 30, result.PreparationDelayMinutes)

	// lead 30 + prep 30: nothing before 11:00 even though the shop opened at 07:00
	assert.Equal(t, "11:00", result.Slots[0].Label)
	for _, slot := range result.Slots {
		assert.GreaterOrEqual(t, slot.DateTime.Sub(now), 60*time.Minute, "slot %s breaks the minimum notice", slot.Label)
	}
}

func TestComputeAvailableSlotsOrderedAndHalfOpen(t *testing.T) {
	engine := NewEngine(defaultStore())
	now := monday.Add(5 * time.Hour) // early enough that every candidate survives

	result, err := engine.ComputeAvailableSlots(monday, "pains", now)
	require.NoError(t, err)

	// 07:00-12:30 at 15 min = 22 slots, 15:00-19:00 = 16 slots
	assert.Equal(t, 38, result.TotalSlots)
	assert.Len(t, result.Slots, 38)

	assert.Equal(t, "07:00", result.Slots[0].Label)
	for i := 1; i < len(result.Slots); i++ {
		assert.True(t, result.Slots[i-1].DateTime.Before(result.Slots[i].DateTime))
	}
	for _, slot := range result.Slots {
		// window ends are excluded
		assert.NotEqual(t, "12:30", slot.Label)
		assert.NotEqual(t, "19:00", slot.Label)
	}
	// last morning slot is 12:15
	assert.Equal(t, "12:15", result.Slots[21].Label)
	assert.Equal(t, "15:00", result.Slots[22].Label)
}

func TestComputeAvailableSlotsFullClosure(t *testing.T) {
	store := defaultStore()
	store.closures = []models.ExceptionalClosure{{
		StartDate:   monday.AddDate(0, 0, -1),
		EndDate:     monday.AddDate(0, 0, 3),
		Active:      true,
		FullClosure: true,
		Message:     "Fermé pour congés",
	}}
	// The weekly schedule must not be consulted on a full closure
	store.hours = nil

	engine := NewEngine(store)
	result, err := engine.ComputeAvailableSlots(monday, "", monday)
	require.NoError(t, err)

	assert.True(t, result.ExceptionalClosure)
	assert.Empty(t, result.Slots)
	assert.Equal(t, "Fermé pour congés", result.Message)
}

func TestComputeAvailableSlotsInactiveClosureIgnored(t *testing.T) {
	store := defaultStore()
	store.closures = []models.ExceptionalClosure{{
		StartDate:   monday,
		EndDate:     monday,
		Active:      false,
		FullClosure: true,
	}}

	engine := NewEngine(store)
	result, err := engine.ComputeAvailableSlots(monday, "pains", monday.Add(5*time.Hour))
	require.NoError(t, err)

	assert.False(t, result.ExceptionalClosure)
	assert.NotEmpty(t, result.Slots)
}

func TestComputeAvailableSlotsClosedDay(t *testing.T) {
	engine := NewEngine(defaultStore())
	sunday := monday.AddDate(0, 0, -1)

	result, err := engine.ComputeAvailableSlots(sunday, "", monday)
	require.NoError(t, err)

	assert.True(t, result.IsClosed)
	assert.Empty(t, result.Slots)
	assert.Equal(t, "Boulangerie fermée le dimanche", result.Message)
}

func TestComputeAvailableSlotsDayWithoutEntry(t *testing.T) {
	engine := NewEngine(defaultStore())
	tuesday := monday.AddDate(0, 0, 1)

	result, err := engine.ComputeAvailableSlots(tuesday, "", monday)
	require.NoError(t, err)

	assert.True(t, result.IsClosed)
	assert.Empty(t, result.Slots)
	assert.Equal(t, "Boulangerie fermée le mardi", result.Message)
}

func TestComputeAvailableSlotsBlankWindows(t *testing.T) {
	store := defaultStore()
	store.hours[time.Monday] = models.OpeningHours{DayOfWeek: time.Monday, Open: true}

	engine := NewEngine(store)
	result, err := engine.ComputeAvailableSlots(monday, "", monday)
	require.NoError(t, err)

	assert.False(t, result.IsClosed)
	assert.Empty(t, result.Slots)
	assert.Equal(t, 0, result.TotalSlots)
}

func TestComputeAvailableSlotsSingleBlankWindow(t *testing.T) {
	store := defaultStore()
	day := store.hours[time.Monday]
	day.AfternoonStart = ""
	day.AfternoonEnd = ""
	store.hours[time.Monday] = day

	engine := NewEngine(store)
	result, err := engine.ComputeAvailableSlots(monday, "pains", monday)
	require.NoError(t, err)

	// only the 22 morning slots remain
	assert.Equal(t, 22, result.TotalSlots)
}

func TestComputeAvailableSlotsCapacityBoundary(t *testing.T) {
	store := defaultStore()
	store.booked = map[string]int64{
		"2025-06-02 08:00": 3, // at capacity, excluded
		"2025-06-02 08:15": 2, // one seat left
	}

	engine := NewEngine(store)
	result, err := engine.ComputeAvailableSlots(monday, "", monday)
	require.NoError(t, err)

	assert.Equal(t, 38, result.TotalSlots, "full slots still count in the pre-filter total")
	labels := map[string]Slot{}
	for _, slot := range result.Slots {
		labels[slot.Label] = slot
	}
	_, found := labels["08:00"]
	assert.False(t, found, "a slot at capacity must not be offered")

	slot, found := labels["08:15"]
	require.True(t, found)
	assert.True(t, slot.Available)
	assert.Equal(t, 2, slot.BookedCount)
}

func TestComputeAvailableSlotsCategoryFallback(t *testing.T) {
	engine := NewEngine(defaultStore())

	result, err := engine.ComputeAvailableSlots(monday, "nougat", monday)
	require.NoError(t, err)
	assert.Equal(t, 15, result.PreparationDelayMinutes)

	result, err = engine.ComputeAvailableSlots(monday, "", monday)
	require.NoError(t, err)
	assert.Equal(t, 15, result.PreparationDelayMinutes)
}

func TestComputeAvailableSlotsIdempotent(t *testing.T) {
	store := defaultStore()
	store.booked = map[string]int64{"2025-06-02 09:00": 1}
	engine := NewEngine(store)
	now := monday.Add(7 * time.Hour)

	first, err := engine.ComputeAvailableSlots(monday, "pains", now)
	require.NoError(t, err)
	second, err := engine.ComputeAvailableSlots(monday, "pains", now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeAvailableSlotsMissingConfig(t *testing.T) {
	store := defaultStore()
	store.hours = nil
	engine := NewEngine(store)

	_, err := engine.ComputeAvailableSlots(monday, "", monday)
	assert.ErrorIs(t, err, ErrMissingConfig)

	store = defaultStore()
	store.cfg = nil
	engine = NewEngine(store)

	_, err = engine.ComputeAvailableSlots(monday, "", monday)
	assert.ErrorIs(t, err, ErrMissingConfig)
}
