// internal/model/plan.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// AddPeriod returns t advanced by one billing period. Unrecognized cycles
// fall back to monthly.
func (c BillingCycle) AddPeriod(t time.Time) time.Time {
	if c == CycleYearly {
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 1, 0)
}

type Plan struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"type:text;not null" json:"name"`
	Slug         string          `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Description  string          `gorm:"type:text" json:"description"`
	MemberLimit  *int            `json:"member_limit"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	BillingCycle BillingCycle    `gorm:"type:text;not null;default:'monthly'" json:"billing_cycle"`
	IsActive     bool            `gorm:"not null;default:true" json:"is_active"`
	SortOrder    int             `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	PlanModules   []PlanModule   `gorm:"foreignKey:PlanID" json:"plan_modules,omitempty"`
	FeatureLimits []FeatureLimit `gorm:"foreignKey:PlanID" json:"feature_limits,omitempty"`
}

// HasModule reports whether the preloaded plan links the module slug with
// is_enabled set. Gate checks that cannot rely on preloading go through
// PlanRepository.HasModule instead.
func (p *Plan) HasModule(slug string) bool {
	for _, pm := range p.PlanModules {
		if pm.Module.Slug == slug && pm.IsEnabled {
			return true
		}
	}
	return false
}

type Module struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Slug        string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Icon        string    `gorm:"type:text" json:"icon"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlanModule joins a plan to a module. A module can be linked but disabled.
type PlanModule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_module" json:"plan_id"`
	ModuleID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_module" json:"module_id"`
	IsEnabled bool      `gorm:"not null;default:true" json:"is_enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Module Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}

type LimitType string

const (
	LimitTypeCount   LimitType = "count"
	LimitTypeMonthly LimitType = "monthly"
	LimitTypeYearly  LimitType = "yearly"
)

// FeatureLimit is a per-plan ceiling on a named countable resource.
// A nil LimitValue means unlimited. LimitType is descriptive only.
type FeatureLimit struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PlanID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_plan_feature_key" json:"plan_id"`
	FeatureKey  string    `gorm:"type:text;not null;uniqueIndex:idx_plan_feature_key" json:"feature_key"`
	FeatureName string    `gorm:"type:text;not null" json:"feature_name"`
	LimitValue  *int      `json:"limit_value"`
	LimitType   LimitType `gorm:"type:text;not null;default:'count'" json:"limit_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *FeatureLimit) IsUnlimited() bool {
	return f.LimitValue == nil
}
