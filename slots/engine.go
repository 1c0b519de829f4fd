package slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/maisondupain/boulangerie-api/models"
)

// ErrMissingConfig is returned when the opening hours or the slot generation
// config are absent from the database. Handlers surface it as a 404.
var ErrMissingConfig = errors.New("slot configuration missing")

// Store is the persistence boundary of the engine. The engine never touches
// the database directly so the computation stays deterministic under test.
type Store interface {
	LoadOpeningHours() (map[time.Weekday]models.OpeningHours, error)
	LoadSlotConfig() (*models.SlotConfig, error)
	LoadPreparationDelays() (map[string]int, error)
	FindActiveClosures(date time.Time) ([]models.ExceptionalClosure, error)
	CountBookedOrders(ts time.Time) (int64, error)
}

// dayNames maps weekdays to the customer-facing French labels. Scheduling
// lookups are keyed on time.Weekday only; these labels are presentation.
var dayNames = map[time.Weekday]string{
	time.Sunday:    "dimanche",
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
}

// DayName returns the French label for a weekday.
func DayName(d time.Weekday) string {
	return dayNames[d]
}

type Slot struct {
	DateTime         time.Time `json:"datetime"`
	Label            string    `json:"heure"`
	MinutesRemaining int       `json:"minutesRestantes"`
	Available        bool      `json:"available"`
	BookedCount      int       `json:"bookedCount"`
}

type Availability struct {
	Date                    string `json:"date"`
	Slots                   []Slot `json:"creneaux"`
	TotalSlots              int    `json:"totalSlots"`
	PreparationDelayMinutes int    `json:"delaiPreparation"`
	IsClosed                bool   `json:"ferme,omitempty"`
	ExceptionalClosure      bool   `json:"fermetureExceptionnelle,omitempty"`
	Message                 string `json:"message,omitempty"`
}

type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// ComputeAvailableSlots returns the bookable pickup slots for a date. The
// caller supplies now so two identical calls always produce the same result.
func (e *Engine) ComputeAvailableSlots(targetDate time.Time, category string, now time.Time) (*Availability, error) {
	delay, err := e.resolveDelay(category)
	if err != nil {
		return nil, err
	}

	result := &Availability{
		Date:                    targetDate.Format("2006-01-02"),
		Slots:                   []Slot{},
		PreparationDelayMinutes: delay,
	}

	closures, err := e.store.FindActiveClosures(targetDate)
	if err != nil {
		return nil, err
	}
	for _, closure := range closures {
		if !closure.AppliesTo(targetDate) {
			continue
		}
		if closure.FullClosure {
			result.ExceptionalClosure = true
			result.Message = closure.Message
			if result.Message == "" {
				result.Message = "Fermeture exceptionnelle"
			}
			return result, nil
		}
		// Partial closure: slots stay on, the message is shown alongside
		result.Message = closure.Message
	}

	hours, err := e.store.LoadOpeningHours()
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		return nil, ErrMissingConfig
	}

	day, ok := hours[targetDate.Weekday()]
	if !ok || !day.Open {
		result.IsClosed = true
		result.Message = fmt.Sprintf("Boulangerie fermée le %s", dayNames[targetDate.Weekday()])
		return result, nil
	}

	cfg, err := e.store.LoadSlotConfig()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrMissingConfig
	}

	var candidates []time.Time
	for _, window := range [][2]string{
		{day.MorningStart, day.MorningEnd},
		{day.AfternoonStart, day.AfternoonEnd},
	} {
		slots, err := windowSlots(targetDate, window[0], window[1], cfg.IntervalMinutes)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, slots...)
	}

	// Slots closer than the lead time plus preparation delay are not realistic
	// offers, so they are dropped before annotation and never shown.
	minNotice := time.Duration(cfg.MinimumLeadMinutes+delay) * time.Minute
	for _, candidate := range candidates {
		remaining := candidate.Sub(now)
		if remaining < minNotice {
			continue
		}

		booked, err := e.store.CountBookedOrders(candidate)
		if err != nil {
			return nil, err
		}
		result.TotalSlots++

		if int(booked) >= cfg.SimultaneousSlots {
			continue
		}
		result.Slots = append(result.Slots, Slot{
			DateTime:         candidate,
			Label:            candidate.Format("15:04"),
			MinutesRemaining: int(remaining.Minutes()),
			Available:        true,
			BookedCount:      int(booked),
		})
	}

	return result, nil
}

// resolveDelay looks up the preparation delay for a category, falling back to
// "autres" when the category is empty or unknown.
func (e *Engine) resolveDelay(category string) (int, error) {
	delays, err := e.store.LoadPreparationDelays()
	if err != nil {
		return 0, err
	}
	if category != "" {
		if minutes, ok := delays[category]; ok {
			return minutes, nil
		}
	}
	return delays[models.CategoryAutres], nil
}

// windowSlots builds candidate pickup times by stepping through one opening
// window. The interval is half-open: the start is included, the end is not.
// Stepping is done on wall-clock minutes of the target date so a DST change
// never shifts the generated times.
func windowSlots(date time.Time, start, end string, intervalMinutes int) ([]time.Time, error) {
	if start == "" || end == "" {
		return nil, nil
	}
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot interval: %d", intervalMinutes)
	}

	startMin, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return nil, err
	}

	var slots []time.Time
	for m := startMin; m < endMin; m += intervalMinutes {
		slots = append(slots, time.Date(
			date.Year(), date.Month(), date.Day(),
			m/60, m%60, 0, 0, date.Location(),
		))
	}
	return slots, nil
}

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q", value)
	}
	return t.Hour()*60 + t.Minute(), nil
}
