// internal/repository/client.go
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

// ClientRepositoryIface scopes every read and write by organization id.
// The scoping is an explicit parameter rather than an implicit query
// modifier so the tenancy boundary stays visible at call sites.
type ClientRepositoryIface interface {
	ListForOrganization(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Client, int64, error)
	FindForOrganization(ctx context.Context, orgID, id uuid.UUID) (*model.Client, error)
	CountForOrganization(ctx context.Context, orgID uuid.UUID) (int64, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) ListForOrganization(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.Client, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting clients: %w", err)
	}

	var clients []*model.Client
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, 0, fmt.Errorf("listing clients: %w", err)
	}
	return clients, count, nil
}

func (r *ClientRepository) FindForOrganization(ctx context.Context, orgID, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("finding client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) CountForOrganization(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting clients: %w", err)
	}
	return count, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *model.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client *model.Client) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id = ?", orgID, id).
		Delete(&model.Client{}).Error; err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}
