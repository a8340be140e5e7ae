package model_test

import (
	"testing"
	"time"

	"github.com/bitvara/backoffice/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestBillingCycleAddPeriod(t *testing.T) {
	anchor := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), model.CycleMonthly.AddPeriod(anchor),
		"monthly from Jan 31 normalizes past February")
	assert.Equal(t, anchor.AddDate(1, 0, 0), model.CycleYearly.AddPeriod(anchor))
	assert.Equal(t, anchor.AddDate(0, 1, 0), model.BillingCycle("weekly").AddPeriod(anchor),
		"unknown cycle falls back to monthly")
}

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("active with future ends_at", func(t *testing.T) {
		ends := now.Add(time.Hour)
		sub := model.Subscription{Status: model.SubscriptionActive, EndsAt: &ends}
		assert.True(t, sub.IsActive(now))
	})

	t.Run("active with nil ends_at never expires", func(t *testing.T) {
		sub := model.Subscription{Status: model.SubscriptionActive}
		assert.True(t, sub.IsActive(now))
	})

	t.Run("past ends_at gates inactive despite stored status", func(t *testing.T) {
		ends := now.Add(-time.Second)
		sub := model.Subscription{Status: model.SubscriptionActive, EndsAt: &ends}
		assert.False(t, sub.IsActive(now))
	})

	t.Run("ends_at equal to now is expired", func(t *testing.T) {
		ends := now
		sub := model.Subscription{Status: model.SubscriptionActive, EndsAt: &ends}
		assert.False(t, sub.IsActive(now))
	})

	t.Run("cancelled is inactive regardless of window", func(t *testing.T) {
		ends := now.Add(time.Hour)
		sub := model.Subscription{Status: model.SubscriptionCancelled, EndsAt: &ends}
		assert.False(t, sub.IsActive(now))
	})
}

func TestSubscriptionIsOnTrial(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	assert.True(t, (&model.Subscription{TrialEndsAt: &future}).IsOnTrial(now))
	assert.False(t, (&model.Subscription{TrialEndsAt: &past}).IsOnTrial(now))
	assert.False(t, (&model.Subscription{}).IsOnTrial(now))
}
