package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromoCodeValidate(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	valid := PromoCode{
		Code:     "RENTREE10",
		Percent:  10,
		StartsAt: now.AddDate(0, 0, -1),
		EndsAt:   now.AddDate(0, 0, 7),
		IsActive: true,
	}
	assert.NoError(t, valid.Validate(now))

	inactive := valid
	inactive.IsActive = false
	assert.Error(t, inactive.Validate(now))

	notStarted := valid
	notStarted.StartsAt = now.Add(time.Hour)
	assert.Error(t, notStarted.Validate(now))

	expired := valid
	expired.EndsAt = now.Add(-time.Hour)
	assert.Error(t, expired.Validate(now))

	exhausted := valid
	exhausted.UsageLimit = 5
	exhausted.UsedCount = 5
	assert.Error(t, exhausted.Validate(now))

	lastUse := valid
	lastUse.UsageLimit = 5
	lastUse.UsedCount = 4
	assert.NoError(t, lastUse.Validate(now))

	unlimited := valid
	unlimited.UsageLimit = 0
	unlimited.UsedCount = 9999
	assert.NoError(t, unlimited.Validate(now))
}

func TestPromoCodeDiscountFor(t *testing.T) {
	promo := PromoCode{Percent: 10}
	assert.Equal(t, int64(250), promo.DiscountFor(2500))
	assert.Equal(t, int64(0), promo.DiscountFor(0))

	full := PromoCode{Percent: 100}
	assert.Equal(t, int64(2500), full.DiscountFor(2500))
}

func TestExceptionalClosureAppliesTo(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	closure := ExceptionalClosure{StartDate: start, EndDate: end, Active: true}

	assert.True(t, closure.AppliesTo(start))
	assert.True(t, closure.AppliesTo(end))
	assert.True(t, closure.AppliesTo(start.AddDate(0, 0, 7)))
	// a time late on the last day still counts as the last day
	assert.True(t, closure.AppliesTo(end.Add(23*time.Hour)))
	assert.False(t, closure.AppliesTo(start.AddDate(0, 0, -1)))
	assert.False(t, closure.AppliesTo(end.AddDate(0, 0, 1)))

	closure.Active = false
	assert.False(t, closure.AppliesTo(start))
}
