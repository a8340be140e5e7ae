// internal/repository/plan.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Plan, error)
	FindBySlug(ctx context.Context, slug string) (*model.Plan, error)
	// ListActive returns active plans ordered by sort_order with modules
	// and feature limits preloaded.
	ListActive(ctx context.Context) ([]*model.Plan, error)
	// HasModule reports whether the plan links the module slug with
	// is_enabled=true.
	HasModule(ctx context.Context, planID uuid.UUID, moduleSlug string) (bool, error)
	// FindFeatureLimit returns nil when the plan defines no limit row for
	// the key, which gating treats as unlimited.
	FindFeatureLimit(ctx context.Context, planID uuid.UUID, featureKey string) (*model.FeatureLimit, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("finding plan: %w", err)
	}
	return &plan, nil
}

func (r *PlanRepository) FindBySlug(ctx context.Context, slug string) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("finding plan by slug: %w", err)
	}
	return &plan, nil
}

func (r *PlanRepository) ListActive(ctx context.Context) ([]*model.Plan, error) {
	var plans []*model.Plan
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order").
		Preload("PlanModules.Module").
		Preload("FeatureLimits").
		Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("listing active plans: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) HasModule(ctx context.Context, planID uuid.UUID, moduleSlug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PlanModule{}).
		Joins("JOIN modules ON modules.id = plan_modules.module_id").
		Where("plan_modules.plan_id = ? AND modules.slug = ? AND plan_modules.is_enabled = ?", planID, moduleSlug, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking plan module: %w", err)
	}
	return count > 0, nil
}

func (r *PlanRepository) FindFeatureLimit(ctx context.Context, planID uuid.UUID, featureKey string) (*model.FeatureLimit, error) {
	var limit model.FeatureLimit
	if err := r.db.WithContext(ctx).
		Where("plan_id = ? AND feature_key = ?", planID, featureKey).
		First(&limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding feature limit: %w", err)
	}
	return &limit, nil
}
