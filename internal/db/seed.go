// internal/db/seed.go
package db

import (
	"context"
	"fmt"

	"github.com/bitvara/backoffice/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedModule struct {
	name, slug, icon, description string
}

type seedPlan struct {
	name, slug, description string
	memberLimit             *int
	price                   string
	cycle                   model.BillingCycle
	sortOrder               int
	modules                 []string
	limits                  map[string]seedLimit
}

type seedLimit struct {
	name      string
	value     *int
	limitType model.LimitType
}

func intPtr(v int) *int { return &v }

var seedModules = []seedModule{
	{"Client Management", "client-management", "users", "Manage clients and their records"},
	{"Service Management", "service-management", "briefcase", "Define and track services"},
	{"Task & Compliance", "task-compliance", "check-square", "Tasks and compliance deadlines"},
	{"Invoice & Billing", "invoice-billing", "file-text", "Invoicing and billing"},
	{"Reports", "reports", "bar-chart", "Business reports"},
	{"Reminder System", "reminder-system", "bell", "Automated reminders"},
	{"Staff Management", "staff-management", "user-check", "Staff roles and attendance"},
}

var seedPlans = []seedPlan{
	{
		name: "Basic", slug: "basic",
		description: "For small teams getting started",
		memberLimit: intPtr(3),
		price:       "29.00",
		cycle:       model.CycleMonthly,
		sortOrder:   1,
		modules:     []string{"client-management", "service-management", "task-compliance"},
		limits: map[string]seedLimit{
			"clients_limit": {name: "Clients", value: intPtr(50), limitType: model.LimitTypeCount},
		},
	},
	{
		name: "Pro", slug: "pro",
		description: "For growing practices",
		memberLimit: intPtr(10),
		price:       "99.00",
		cycle:       model.CycleMonthly,
		sortOrder:   2,
		modules: []string{
			"client-management", "service-management", "task-compliance",
			"invoice-billing", "reports", "reminder-system", "staff-management",
		},
		limits: map[string]seedLimit{
			"clients_limit":      {name: "Clients", value: intPtr(500), limitType: model.LimitTypeCount},
			"invoices_per_month": {name: "Invoices per month", value: intPtr(100), limitType: model.LimitTypeMonthly},
		},
	},
	{
		name: "Custom", slug: "custom",
		description: "Tailored for large organizations",
		memberLimit: nil,
		price:       "0.00",
		cycle:       model.CycleMonthly,
		sortOrder:   3,
		modules: []string{
			"client-management", "service-management", "task-compliance",
			"invoice-billing", "reports", "reminder-system", "staff-management",
		},
		limits: map[string]seedLimit{},
	},
}

// Seed upserts the module catalog and the plan matrix. Safe to run more
// than once; rows are matched by slug.
func Seed(ctx context.Context, gdb *gorm.DB) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moduleIDs := make(map[string]model.Module)
		for i, m := range seedModules {
			module := model.Module{
				Name:        m.name,
				Slug:        m.slug,
				Icon:        m.icon,
				Description: m.description,
				IsActive:    true,
				SortOrder:   i + 1,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "icon", "description", "sort_order"}),
			}).Create(&module).Error; err != nil {
				return fmt.Errorf("seeding module %s: %w", m.slug, err)
			}
			if module.ID == uuid.Nil {
				if err := tx.Where("slug = ?", m.slug).First(&module).Error; err != nil {
					return fmt.Errorf("loading module %s: %w", m.slug, err)
				}
			}
			moduleIDs[m.slug] = module
		}

		for _, p := range seedPlans {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				return fmt.Errorf("parsing price for plan %s: %w", p.slug, err)
			}

			plan := model.Plan{
				Name:         p.name,
				Slug:         p.slug,
				Description:  p.description,
				MemberLimit:  p.memberLimit,
				Price:        price,
				BillingCycle: p.cycle,
				IsActive:     true,
				SortOrder:    p.sortOrder,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "description", "member_limit", "price", "billing_cycle", "sort_order"}),
			}).Create(&plan).Error; err != nil {
				return fmt.Errorf("seeding plan %s: %w", p.slug, err)
			}
			if plan.ID == uuid.Nil {
				if err := tx.Where("slug = ?", p.slug).First(&plan).Error; err != nil {
					return fmt.Errorf("loading plan %s: %w", p.slug, err)
				}
			}

			for _, slug := range p.modules {
				module, ok := moduleIDs[slug]
				if !ok {
					return fmt.Errorf("plan %s references unknown module %s", p.slug, slug)
				}
				link := model.PlanModule{
					PlanID:    plan.ID,
					ModuleID:  module.ID,
					IsEnabled: true,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "plan_id"}, {Name: "module_id"}},
					DoUpdates: clause.AssignmentColumns([]string{"is_enabled"}),
				}).Create(&link).Error; err != nil {
					return fmt.Errorf("linking plan %s to module %s: %w", p.slug, slug, err)
				}
			}

			for key, limit := range p.limits {
				row := model.FeatureLimit{
					PlanID:      plan.ID,
					FeatureKey:  key,
					FeatureName: limit.name,
					LimitValue:  limit.value,
					LimitType:   limit.limitType,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "plan_id"}, {Name: "feature_key"}},
					DoUpdates: clause.AssignmentColumns([]string{"feature_name", "limit_value", "limit_type"}),
				}).Create(&row).Error; err != nil {
					return fmt.Errorf("seeding limit %s for plan %s: %w", key, p.slug, err)
				}
			}
		}

		return nil
	})
}
