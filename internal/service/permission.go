// internal/service/permission.go
package service

import (
	"context"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
)

type PermissionService struct {
	repo     repository.OrganizationPermissionRepositoryIface
	policy   *authz.Policy
	validate *validator.Validate
}

func NewPermissionService(
	repo repository.OrganizationPermissionRepositoryIface,
	policy *authz.Policy,
) *PermissionService {
	return &PermissionService{
		repo:     repo,
		policy:   policy,
		validate: validator.New(),
	}
}

type CreatePermissionInput struct {
	Name string `json:"name" validate:"required"`
	Key  string `json:"key" validate:"required,lowercase"`
}

// List returns the organization's custom permission keys.
func (s *PermissionService) List(ctx context.Context, user *model.User, org *model.Organization) ([]*model.OrganizationPermission, error) {
	decision, err := s.policy.CanViewOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrOrganizationAccessDenied
	}
	return s.repo.ListForOrganization(ctx, org.ID)
}

// Create defines a new permission key scoped to the organization. Keys are
// unique per organization only.
func (s *PermissionService) Create(ctx context.Context, user *model.User, org *model.Organization, input CreatePermissionInput) (*model.OrganizationPermission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	decision, err := s.policy.CanManageOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	permission := &model.OrganizationPermission{
		OrganizationID: org.ID,
		Name:           input.Name,
		Key:            input.Key,
	}
	if err := s.repo.Create(ctx, permission); err != nil {
		return nil, err
	}
	return permission, nil
}
