// internal/repository/subscription.go
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
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subscription, error)
	// CurrentForOrganization returns the most-recently-started subscription
	// that gates as active, with its plan preloaded, or
	// domain.ErrSubscriptionNotFound.
	CurrentForOrganization(ctx context.Context, orgID uuid.UUID) (*model.Subscription, error)
	ListForOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Subscription, error)
	// Supersede cancels every active subscription of the organization and
	// inserts sub as the new active one, all in a single transaction.
	Supersede(ctx context.Context, sub *model.Subscription) error
	Update(ctx context.Context, sub *model.Subscription) error
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).Preload("Plan").First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) CurrentForOrganization(ctx context.Context, orgID uuid.UUID) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", orgID, model.SubscriptionActive).
		Where("ends_at IS NULL OR ends_at > ?", time.Now()).
		Order("starts_at DESC").
		Preload("Plan").
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("finding current subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) ListForOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("starts_at DESC").
		Preload("Plan").
		Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}
	return subs, nil
}

// Supersede locks the organization's subscription rows before the
// cancel-then-insert sequence so concurrent plan selection cannot leave two
// rows active.
func (r *SubscriptionRepository) Supersede(ctx context.Context, sub *model.Subscription) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []model.Subscription
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("organization_id = ?", sub.OrganizationID).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("locking subscriptions: %w", err)
		}

		now := time.Now().UTC()
		if err := tx.Model(&model.Subscription{}).
			Where("organization_id = ? AND status = ?", sub.OrganizationID, model.SubscriptionActive).
			Updates(map[string]interface{}{
				"status":       model.SubscriptionCancelled,
				"cancelled_at": now,
			}).Error; err != nil {
			return fmt.Errorf("cancelling active subscriptions: %w", err)
		}

		if err := tx.Create(sub).Error; err != nil {
			return fmt.Errorf("creating subscription: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}
	return nil
}
