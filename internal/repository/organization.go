// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	// CreateWithOwner inserts the organization and the creator's owner
	// membership in one transaction.
	CreateWithOwner(ctx context.Context, org *model.Organization, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*model.Organization, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) CreateWithOwner(ctx context.Context, org *model.Organization, ownerID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		org.OwnerID = ownerID
		if err := tx.Create(org).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrSlugAlreadyExists
			}
			return fmt.Errorf("creating organization: %w", err)
		}

		membership := &model.Membership{
			OrganizationID: org.ID,
			UserID:         ownerID,
			Role:           model.RoleOwner,
			IsActive:       true,
			JoinedAt:       time.Now().UTC(),
		}
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlugAlreadyExists) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization by slug: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON organizations.id = memberships.organization_id").
		Where("memberships.user_id = ?", userID).
		Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding user organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugAlreadyExists
		}
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

// Delete soft-deletes the organization and removes its memberships.
func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&model.Membership{}).Error; err != nil {
			return fmt.Errorf("deleting memberships: %w", err)
		}
		if err := tx.Delete(&model.Organization{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
