package slots

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/maisondupain/boulangerie-api/models"
)

// GormStore implements Store against the application database. It is the
// only implementation used at runtime; tests substitute an in-memory fake.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) LoadOpeningHours() (map[time.Weekday]models.OpeningHours, error) {
	var rows []models.OpeningHours
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	hours := make(map[time.Weekday]models.OpeningHours, len(rows))
	for _, row := range rows {
		hours[row.DayOfWeek] = row
	}
	return hours, nil
}

func (s *GormStore) LoadSlotConfig() (*models.SlotConfig, error) {
	var cfg models.SlotConfig
	if err := s.DB.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (s *GormStore) LoadPreparationDelays() (map[string]int, error) {
	var rows []models.PreparationDelay
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	delays := make(map[string]int, len(rows))
	for _, row := range rows {
		delays[row.Category] = row.Minutes
	}
	return delays, nil
}

func (s *GormStore) FindActiveClosures(date time.Time) ([]models.ExceptionalClosure, error) {
	var closures []models.ExceptionalClosure
	if err := s.DB.Where("active = ?", true).Find(&closures).Error; err != nil {
		return nil, err
	}
	// Date matching is done in Go so the comparison stays at day precision
	matched := closures[:0]
	for _, closure := range closures {
		if closure.AppliesTo(date) {
			matched = append(matched, closure)
		}
	}
	return matched, nil
}

func (s *GormStore) CountBookedOrders(ts time.Time) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Order{}).
		Where("pickup_time = ? AND status <> ?", ts, models.StatusCanceled).
		Count(&count).Error
	return count, err
}
