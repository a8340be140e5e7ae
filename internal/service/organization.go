// internal/service/organization.go
package service

import (
	"context"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrganizationService struct {
	repo     repository.OrganizationRepositoryIface
	policy   *authz.Policy
	validate *validator.Validate
}

func NewOrganizationService(
	repo repository.OrganizationRepositoryIface,
	policy *authz.Policy,
) *OrganizationService {
	return &OrganizationService{
		repo:     repo,
		policy:   policy,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name    string `json:"name" validate:"required"`
	Slug    string `json:"slug"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateOrganizationInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// Create makes the caller the owner of a new organization. The slug is
// derived from the name unless supplied, and never overwrites an existing
// organization's slug.
func (s *OrganizationService) Create(ctx context.Context, user *model.User, input CreateOrganizationInput) (*model.Organization, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:     input.Name,
		Slug:     input.Slug,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		OwnerID:  user.ID,
		IsActive: true,
	}
	if org.Slug == "" {
		org.Slug = model.Slugify(org.Name)
	}

	if err := s.repo.CreateWithOwner(ctx, org, user.ID); err != nil {
		return nil, err
	}
	return org, nil
}

// Get returns the organization when the user may view it.
func (s *OrganizationService) Get(ctx context.Context, user *model.User, id uuid.UUID) (*model.Organization, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.policy.CanViewOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrOrganizationAccessDenied
	}
	return org, nil
}

// ListForUser returns every organization the user is a member of.
func (s *OrganizationService) ListForUser(ctx context.Context, user *model.User) ([]model.Organization, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByUser(ctx, user.ID)
}

// Update applies the non-nil fields. Owners and admins only.
func (s *OrganizationService) Update(ctx context.Context, user *model.User, id uuid.UUID, input UpdateOrganizationInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	decision, err := s.policy.CanManageOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Email != nil {
		org.Email = *input.Email
	}
	if input.Phone != nil {
		org.Phone = *input.Phone
	}
	if input.Address != nil {
		org.Address = *input.Address
	}

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Delete soft-deletes the organization and removes its memberships.
// Owner only.
func (s *OrganizationService) Delete(ctx context.Context, user *model.User, id uuid.UUID) error {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	decision, err := s.policy.CanDeleteOrganization(ctx, user, org)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return domain.ErrActionNotAllowed
	}

	return s.repo.Delete(ctx, id)
}
