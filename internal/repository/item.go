// internal/repository/item.go
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

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	Search   string
	Status   string
	ItemType string
	Offset   int
	Limit    int
}

type ItemRepositoryIface interface {
	List(ctx context.Context, filter ItemFilter) ([]*model.Item, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	// Create inserts the item and its tax, pricing, inventory and
	// compliance sub-records in one transaction.
	Create(ctx context.Context, item *model.Item) error
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]*model.Category, error)
	FindOrCreateCategory(ctx context.Context, name string) (*model.Category, error)

	CreateStockMovement(ctx context.Context, movement *model.StockMovement) error
	ListStockMovements(ctx context.Context, itemID uuid.UUID) ([]*model.StockMovement, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context, filter ItemFilter) ([]*model.Item, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Item{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR item_code ILIKE ? OR brand ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ItemType != "" {
		query = query.Where("item_type = ?", filter.ItemType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting items: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	var items []*model.Item
	if err := query.
		Preload("Category").
		Preload("Pricing").
		Preload("Inventory").
		Order("created_at DESC").
		Offset(filter.Offset).Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("listing items: %w", err)
	}
	return items, count, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("TaxDetail").
		Preload("Pricing").
		Preload("Inventory").
		Preload("Compliance").
		First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("finding item: %w", err)
	}
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// FullSaveAssociations would upsert; a plain Create cascades the
		// has-one sub-records with the generated item id.
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("creating item: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item *model.Item) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(item).Error; err != nil {
			return fmt.Errorf("updating item: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sub := range []interface{}{
			&model.ItemTaxDetail{}, &model.ItemPricing{}, &model.ItemInventory{}, &model.ItemCompliance{},
		} {
			if err := tx.Where("item_id = ?", id).Delete(sub).Error; err != nil {
				return fmt.Errorf("deleting item sub-record: %w", err)
			}
		}
		if err := tx.Delete(&model.Item{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting item: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ItemRepository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

func (r *ItemRepository) FindOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		FirstOrCreate(&category, model.Category{Name: name}).Error; err != nil {
		return nil, fmt.Errorf("finding or creating category: %w", err)
	}
	return &category, nil
}

func (r *ItemRepository) CreateStockMovement(ctx context.Context, movement *model.StockMovement) error {
	if err := r.db.WithContext(ctx).Create(movement).Error; err != nil {
		return fmt.Errorf("creating stock movement: %w", err)
	}
	return nil
}

func (r *ItemRepository) ListStockMovements(ctx context.Context, itemID uuid.UUID) ([]*model.StockMovement, error) {
	var movements []*model.StockMovement
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("listing stock movements: %w", err)
	}
	return movements, nil
}
