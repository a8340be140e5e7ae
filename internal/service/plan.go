// internal/service/plan.go
package service

import (
	"context"

	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
)

// PlanService exposes the public plan catalog. Plans are global and
// readable without tenant context.
type PlanService struct {
	repo repository.PlanRepositoryIface
}

func NewPlanService(repo repository.PlanRepositoryIface) *PlanService {
	return &PlanService{repo: repo}
}

// List returns active plans with their modules and feature limits.
func (s *PlanService) List(ctx context.Context) ([]*model.Plan, error) {
	return s.repo.ListActive(ctx)
}

func (s *PlanService) GetBySlug(ctx context.Context, slug string) (*model.Plan, error) {
	return s.repo.FindBySlug(ctx, slug)
}
