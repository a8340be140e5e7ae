// internal/model/subscription.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription records an organization's enrollment in a plan over a time
// window. Expiry is a read-time condition: an ends_at in the past makes the
// row gate as inactive even while the stored status is still "active".
type Subscription struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID          `gorm:"type:uuid;not null;index" json:"organization_id"`
	PlanID         uuid.UUID          `gorm:"type:uuid;not null" json:"plan_id"`
	Status         SubscriptionStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	StartsAt       time.Time          `gorm:"not null" json:"starts_at"`
	EndsAt         *time.Time         `json:"ends_at"`
	TrialEndsAt    *time.Time         `json:"trial_ends_at"`
	CancelledAt    *time.Time         `json:"cancelled_at"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Plan         Plan         `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}

// IsActive applies the gating definition of active: status is active and
// ends_at is unset or in the future.
func (s *Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	return s.EndsAt == nil || s.EndsAt.After(now)
}

func (s *Subscription) IsOnTrial(now time.Time) bool {
	return s.TrialEndsAt != nil && s.TrialEndsAt.After(now)
}
