package models

import (
	"time"

	"gorm.io/gorm"
)

// OpeningHours holds one row per weekday with up to two service windows.
// A window whose start and end are both blank is unused for that half-day.
type OpeningHours struct {
	gorm.Model
	DayOfWeek      time.Weekday `json:"day_of_week" gorm:"uniqueIndex"`
	Open           bool         `json:"open" gorm:"default:true"`
	MorningStart   string       `json:"morning_start"` // Format "HH:MM" in 24h
	MorningEnd     string       `json:"morning_end"`
	AfternoonStart string       `json:"afternoon_start"`
	AfternoonEnd   string       `json:"afternoon_end"`
}

// ExceptionalClosure marks a date range where the bakery deviates from the
// weekly schedule, e.g. holidays. FullClosure suppresses all pickup slots.
type ExceptionalClosure struct {
	gorm.Model
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Active      bool      `json:"active" gorm:"default:true"`
	FullClosure bool      `json:"full_closure" gorm:"default:true"`
	Message     string    `json:"message"`
}

// AppliesTo reports whether the closure covers the given calendar date.
func (c *ExceptionalClosure) AppliesTo(date time.Time) bool {
	if !c.Active {
		return false
	}
	day := date.Format("2006-01-02")
	return c.StartDate.Format("2006-01-02") <= day && day <= c.EndDate.Format("2006-01-02")
}

// SlotConfig is a single-row table driving pickup slot generation.
type SlotConfig struct {
	gorm.Model
	IntervalMinutes    int `json:"interval_minutes" gorm:"default:15"`
	MinimumLeadMinutes int `json:"minimum_lead_minutes" gorm:"default:30"`
	SimultaneousSlots  int `json:"simultaneous_slots" gorm:"default:3"`
}

// PreparationDelay maps a product category to the minutes the kitchen needs
// before a pickup. The "autres" row is the fallback for unknown categories.
type PreparationDelay struct {
	gorm.Model
	Category string `json:"category" gorm:"uniqueIndex"`
	Minutes  int    `json:"minutes"`
}
