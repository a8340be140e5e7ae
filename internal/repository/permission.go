// internal/repository/permission.go
package repository

import (
	"context"
	"fmt"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationPermissionRepositoryIface interface {
	ListForOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationPermission, error)
	Create(ctx context.Context, permission *model.OrganizationPermission) error
}

type OrganizationPermissionRepository struct {
	db *gorm.DB
}

func NewOrganizationPermissionRepository(db *gorm.DB) *OrganizationPermissionRepository {
	return &OrganizationPermissionRepository{db: db}
}

func (r *OrganizationPermissionRepository) ListForOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationPermission, error) {
	var permissions []*model.OrganizationPermission
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name").
		Find(&permissions).Error; err != nil {
		return nil, fmt.Errorf("listing organization permissions: %w", err)
	}
	return permissions, nil
}

func (r *OrganizationPermissionRepository) Create(ctx context.Context, permission *model.OrganizationPermission) error {
	if err := r.db.WithContext(ctx).Create(permission).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePermissionKey
		}
		return fmt.Errorf("creating organization permission: %w", err)
	}
	return nil
}
