// internal/service/inventory.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryService manages the product catalog and the stock ledger. Item
// records are shared across the account rather than organization-scoped,
// so the only requirement is an authenticated caller.
type InventoryService struct {
	repo     repository.ItemRepositoryIface
	validate *validator.Validate
}

func NewInventoryService(repo repository.ItemRepositoryIface) *InventoryService {
	return &InventoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

type ItemTaxInput struct {
	GSTApplicable       bool             `json:"gst_applicable"`
	HSNSACCode          string           `json:"hsn_sac_code"`
	GSTRate             *decimal.Decimal `json:"gst_rate"`
	CGSTRate            *decimal.Decimal `json:"cgst_rate"`
	SGSTRate            *decimal.Decimal `json:"sgst_rate"`
	IGSTRate            *decimal.Decimal `json:"igst_rate"`
	CessRate            *decimal.Decimal `json:"cess_rate"`
	PriceInclusiveOfTax bool             `json:"price_inclusive_of_tax"`
}

type ItemPricingInput struct {
	PurchasePrice          *decimal.Decimal `json:"purchase_price"`
	SalePrice              *decimal.Decimal `json:"sale_price"`
	MRP                    *decimal.Decimal `json:"mrp"`
	MinimumSalePrice       *decimal.Decimal `json:"minimum_sale_price"`
	DiscountPercentAllowed *decimal.Decimal `json:"discount_percent_allowed"`
	RetailPrice            *decimal.Decimal `json:"retail_price"`
	WholesalePrice         *decimal.Decimal `json:"wholesale_price"`
	DealerPrice            *decimal.Decimal `json:"dealer_price"`
}

type ItemInventoryInput struct {
	PrimaryUnit          string           `json:"primary_unit"`
	ConversionFactor     *decimal.Decimal `json:"conversion_factor"`
	OpeningStockQuantity *decimal.Decimal `json:"opening_stock_quantity"`
	OpeningStockValue    *decimal.Decimal `json:"opening_stock_value"`
	ReorderLevel         *decimal.Decimal `json:"reorder_level"`
	MinimumStockLevel    *decimal.Decimal `json:"minimum_stock_level"`
	BatchEnabled         bool             `json:"batch_enabled"`
	ExpiryDateTracking   bool             `json:"expiry_date_tracking"`
	SerialNumberTracking bool             `json:"serial_number_tracking"`
	GodownWarehouse      string           `json:"godown_warehouse"`
}

type ItemComplianceInput struct {
	EInvoiceApplicable bool `json:"e_invoice_applicable"`
	EWayBillApplicable bool `json:"e_way_bill_applicable"`
}

type ItemInput struct {
	Name         string               `json:"name" validate:"required"`
	ItemCode     string               `json:"item_code"`
	CategoryName string               `json:"category_name"`
	SubCategory  string               `json:"sub_category"`
	Brand        string               `json:"brand"`
	ModelNo      string               `json:"model_no"`
	Description  string               `json:"description"`
	ItemType     string               `json:"item_type" validate:"required,oneof=product service"`
	Status       string               `json:"status" validate:"omitempty,oneof=active inactive"`
	TaxDetail    *ItemTaxInput        `json:"tax_detail"`
	Pricing      *ItemPricingInput    `json:"pricing"`
	Inventory    *ItemInventoryInput  `json:"inventory"`
	Compliance   *ItemComplianceInput `json:"compliance"`
}

type ItemListOutput struct {
	Items []*model.Item `json:"items"`
	Total int64         `json:"total"`
}

func (s *InventoryService) ListItems(ctx context.Context, filter repository.ItemFilter) (*ItemListOutput, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ItemListOutput{Items: items, Total: total}, nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateItem stores the item head record together with all four sub-records.
// Absent input sections produce zero-valued rows, so every item owns exactly
// one of each. A category name resolves to an existing category or creates
// one.
func (s *InventoryService) CreateItem(ctx context.Context, input ItemInput) (*model.Item, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	item := &model.Item{
		Name:        input.Name,
		ItemCode:    input.ItemCode,
		SubCategory: input.SubCategory,
		Brand:       input.Brand,
		ModelNo:     input.ModelNo,
		Description: input.Description,
		ItemType:    input.ItemType,
		Status:      input.Status,
	}
	if item.Status == "" {
		item.Status = "active"
	}

	if input.CategoryName != "" {
		category, err := s.repo.FindOrCreateCategory(ctx, input.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("resolving category: %w", err)
		}
		item.CategoryID = &category.ID
		item.Category = category
	}

	item.TaxDetail = &model.ItemTaxDetail{}
	item.Pricing = &model.ItemPricing{}
	item.Inventory = &model.ItemInventory{}
	item.Compliance = &model.ItemCompliance{}
	applySubRecords(item, input)
	item.Inventory.StockQuantity = item.Inventory.OpeningStockQuantity

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input ItemInput) (*model.Item, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.ItemCode = input.ItemCode
	item.SubCategory = input.SubCategory
	item.Brand = input.Brand
	item.ModelNo = input.ModelNo
	item.Description = input.Description
	item.ItemType = input.ItemType
	if input.Status != "" {
		item.Status = input.Status
	}

	if input.CategoryName != "" {
		category, err := s.repo.FindOrCreateCategory(ctx, input.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("resolving category: %w", err)
		}
		item.CategoryID = &category.ID
		item.Category = category
	}

	applySubRecords(item, input)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *InventoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.repo.ListCategories(ctx)
}

type StockMovementInput struct {
	Type      string          `json:"type" validate:"required,oneof=in out adjust"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Unit      string          `json:"unit"`
	Reference string          `json:"reference"`
}

// RecordMovement appends a row to the item's stock ledger and adjusts the
// cached stock quantity on the inventory sub-record.
func (s *InventoryService) RecordMovement(ctx context.Context, user *model.User, itemID uuid.UUID, input StockMovementInput) (*model.StockMovement, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	movement := &model.StockMovement{
		ItemID:    item.ID,
		Type:      model.MovementType(input.Type),
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		Reference: input.Reference,
		UserID:    user.ID,
	}
	if err := s.repo.CreateStockMovement(ctx, movement); err != nil {
		return nil, err
	}

	if item.Inventory != nil {
		current := decimal.Zero
		if item.Inventory.StockQuantity != nil {
			current = *item.Inventory.StockQuantity
		}
		var next decimal.Decimal
		switch movement.Type {
		case model.MovementIn:
			next = current.Add(movement.Quantity)
		case model.MovementOut:
			next = current.Sub(movement.Quantity)
		case model.MovementAdjust:
			next = movement.Quantity
		default:
			return nil, errors.New("unknown movement type")
		}
		item.Inventory.StockQuantity = &next
		if err := s.repo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	return movement, nil
}

func (s *InventoryService) ListMovements(ctx context.Context, itemID uuid.UUID) ([]*model.StockMovement, error) {
	if _, err := s.repo.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.ListStockMovements(ctx, itemID)
}

func applySubRecords(item *model.Item, input ItemInput) {
	if input.TaxDetail != nil {
		if item.TaxDetail == nil {
			item.TaxDetail = &model.ItemTaxDetail{}
		}
		item.TaxDetail.GSTApplicable = input.TaxDetail.GSTApplicable
		item.TaxDetail.HSNSACCode = input.TaxDetail.HSNSACCode
		item.TaxDetail.GSTRate = input.TaxDetail.GSTRate
		item.TaxDetail.CGSTRate = input.TaxDetail.CGSTRate
		item.TaxDetail.SGSTRate = input.TaxDetail.SGSTRate
		item.TaxDetail.IGSTRate = input.TaxDetail.IGSTRate
		item.TaxDetail.CessRate = input.TaxDetail.CessRate
		item.TaxDetail.PriceInclusiveOfTax = input.TaxDetail.PriceInclusiveOfTax
	}
	if input.Pricing != nil {
		if item.Pricing == nil {
			item.Pricing = &model.ItemPricing{}
		}
		item.Pricing.PurchasePrice = input.Pricing.PurchasePrice
		item.Pricing.SalePrice = input.Pricing.SalePrice
		item.Pricing.MRP = input.Pricing.MRP
		item.Pricing.MinimumSalePrice = input.Pricing.MinimumSalePrice
		item.Pricing.DiscountPercentAllowed = input.Pricing.DiscountPercentAllowed
		item.Pricing.RetailPrice = input.Pricing.RetailPrice
		item.Pricing.WholesalePrice = input.Pricing.WholesalePrice
		item.Pricing.DealerPrice = input.Pricing.DealerPrice
	}
	if input.Inventory != nil {
		if item.Inventory == nil {
			item.Inventory = &model.ItemInventory{}
		}
		item.Inventory.PrimaryUnit = input.Inventory.PrimaryUnit
		item.Inventory.ConversionFactor = input.Inventory.ConversionFactor
		item.Inventory.OpeningStockQuantity = input.Inventory.OpeningStockQuantity
		item.Inventory.OpeningStockValue = input.Inventory.OpeningStockValue
		item.Inventory.ReorderLevel = input.Inventory.ReorderLevel
		item.Inventory.MinimumStockLevel = input.Inventory.MinimumStockLevel
		item.Inventory.BatchEnabled = input.Inventory.BatchEnabled
		item.Inventory.ExpiryDateTracking = input.Inventory.ExpiryDateTracking
		item.Inventory.SerialNumberTracking = input.Inventory.SerialNumberTracking
		item.Inventory.GodownWarehouse = input.Inventory.GodownWarehouse
	}
	if input.Compliance != nil {
		if item.Compliance == nil {
			item.Compliance = &model.ItemCompliance{}
		}
		item.Compliance.EInvoiceApplicable = input.Compliance.EInvoiceApplicable
		item.Compliance.EWayBillApplicable = input.Compliance.EWayBillApplicable
	}
}
