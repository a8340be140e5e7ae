// internal/repository/membership.go
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

type MembershipRepositoryIface interface {
	// Find returns the membership row for the pair regardless of its
	// active flag, or domain.ErrMembershipNotFound.
	Find(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error)
	Create(ctx context.Context, membership *model.Membership) error
	Update(ctx context.Context, membership *model.Membership) error
	Delete(ctx context.Context, orgID, userID uuid.UUID) error
	ListForOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error)
	CountActiveForOrganization(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountActiveWithRoles(ctx context.Context, orgID uuid.UUID, roles ...model.Role) (int64, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Find(ctx context.Context, orgID, userID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &membership, nil
}

func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Update(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Save(membership).Error; err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, orgID, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Delete(&model.Membership{}).Error; err != nil {
		return fmt.Errorf("deleting membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) ListForOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Preload("User").
		Order("joined_at DESC").
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return memberships, nil
}

// CountActiveForOrganization counts only active-flagged memberships; it is
// the count compared against plan member limits.
func (r *MembershipRepository) CountActiveForOrganization(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting active memberships: %w", err)
	}
	return count, nil
}

func (r *MembershipRepository) CountActiveWithRoles(ctx context.Context, orgID uuid.UUID, roles ...model.Role) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("organization_id = ? AND is_active = ? AND role IN ?", orgID, true, roles).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting memberships by role: %w", err)
	}
	return count, nil
}
