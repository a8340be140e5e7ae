// internal/model/item.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item is the head record of the inventory domain. Its tax, pricing,
// inventory and compliance sub-records are created together with the item
// and each item owns exactly one of each.
type Item struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	ItemCode    string     `gorm:"type:text" json:"item_code"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	SubCategory string     `gorm:"type:text" json:"sub_category"`
	Brand       string     `gorm:"type:text" json:"brand"`
	ModelNo     string     `gorm:"type:text" json:"model_no"`
	Description string     `gorm:"type:text" json:"description"`
	ItemType    string     `gorm:"type:text;not null" json:"item_type"`
	Status      string     `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Category   *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	TaxDetail  *ItemTaxDetail  `gorm:"foreignKey:ItemID" json:"tax_detail,omitempty"`
	Pricing    *ItemPricing    `gorm:"foreignKey:ItemID" json:"pricing,omitempty"`
	Inventory  *ItemInventory  `gorm:"foreignKey:ItemID" json:"inventory,omitempty"`
	Compliance *ItemCompliance `gorm:"foreignKey:ItemID" json:"compliance,omitempty"`
}

type ItemTaxDetail struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ItemID              uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"item_id"`
	GSTApplicable       bool             `gorm:"not null;default:false" json:"gst_applicable"`
	HSNSACCode          string           `gorm:"type:text" json:"hsn_sac_code"`
	GSTRate             *decimal.Decimal `gorm:"type:numeric(5,2)" json:"gst_rate"`
	CGSTRate            *decimal.Decimal `gorm:"type:numeric(5,2)" json:"cgst_rate"`
	SGSTRate            *decimal.Decimal `gorm:"type:numeric(5,2)" json:"sgst_rate"`
	IGSTRate            *decimal.Decimal `gorm:"type:numeric(5,2)" json:"igst_rate"`
	CessRate            *decimal.Decimal `gorm:"type:numeric(5,2)" json:"cess_rate"`
	PriceInclusiveOfTax bool             `gorm:"not null;default:false" json:"price_inclusive_of_tax"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type ItemPricing struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ItemID                 uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"item_id"`
	PurchasePrice          *decimal.Decimal `gorm:"type:numeric(14,4)" json:"purchase_price"`
	SalePrice              *decimal.Decimal `gorm:"type:numeric(14,4)" json:"sale_price"`
	MRP                    *decimal.Decimal `gorm:"type:numeric(14,4)" json:"mrp"`
	MinimumSalePrice       *decimal.Decimal `gorm:"type:numeric(14,4)" json:"minimum_sale_price"`
	DiscountPercentAllowed *decimal.Decimal `gorm:"type:numeric(5,2)" json:"discount_percent_allowed"`
	RetailPrice            *decimal.Decimal `gorm:"type:numeric(14,4)" json:"retail_price"`
	WholesalePrice         *decimal.Decimal `gorm:"type:numeric(14,4)" json:"wholesale_price"`
	DealerPrice            *decimal.Decimal `gorm:"type:numeric(14,4)" json:"dealer_price"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

func (ItemPricing) TableName() string { return "item_pricing" }

type ItemInventory struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ItemID               uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"item_id"`
	PrimaryUnit          string           `gorm:"type:text" json:"primary_unit"`
	ConversionFactor     *decimal.Decimal `gorm:"type:numeric(14,4)" json:"conversion_factor"`
	OpeningStockQuantity *decimal.Decimal `gorm:"type:numeric(14,4)" json:"opening_stock_quantity"`
	OpeningStockValue    *decimal.Decimal `gorm:"type:numeric(14,4)" json:"opening_stock_value"`
	StockQuantity        *decimal.Decimal `gorm:"type:numeric(14,4)" json:"stock_quantity"`
	ReorderLevel         *decimal.Decimal `gorm:"type:numeric(14,4)" json:"reorder_level"`
	MinimumStockLevel    *decimal.Decimal `gorm:"type:numeric(14,4)" json:"minimum_stock_level"`
	BatchEnabled         bool             `gorm:"not null;default:false" json:"batch_enabled"`
	ExpiryDateTracking   bool             `gorm:"not null;default:false" json:"expiry_date_tracking"`
	SerialNumberTracking bool             `gorm:"not null;default:false" json:"serial_number_tracking"`
	GodownWarehouse      string           `gorm:"type:text" json:"godown_warehouse"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

func (ItemInventory) TableName() string { return "item_inventory" }

type ItemCompliance struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ItemID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"item_id"`
	EInvoiceApplicable bool      `gorm:"not null;default:false" json:"e_invoice_applicable"`
	EWayBillApplicable bool      `gorm:"not null;default:false" json:"e_way_bill_applicable"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (ItemCompliance) TableName() string { return "item_compliance" }

type MovementType string

const (
	MovementIn     MovementType = "in"
	MovementOut    MovementType = "out"
	MovementAdjust MovementType = "adjust"
)

// StockMovement is an append-only ledger of quantity deltas tied to an item
// and the acting user. Rows are never updated or deleted.
type StockMovement struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	Type      MovementType    `gorm:"type:text;not null" json:"type"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"quantity"`
	Unit      string          `gorm:"type:text" json:"unit"`
	Reference string          `gorm:"type:text" json:"reference"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`

	Item Item `gorm:"foreignKey:ItemID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
