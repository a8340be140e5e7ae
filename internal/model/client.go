// internal/model/client.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is an organization-owned record managed by the client-management
// module. All repository access is scoped by organization id.
type Client struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string         `gorm:"type:text;not null" json:"name"`
	Email          string         `gorm:"type:text" json:"email"`
	Phone          string         `gorm:"type:text" json:"phone"`
	Address        string         `gorm:"type:text" json:"address"`
	CompanyName    string         `gorm:"type:text" json:"company_name"`
	TaxID          string         `gorm:"type:text" json:"tax_id"`
	Status         string         `gorm:"type:text;not null;default:'active'" json:"status"`
	Notes          string         `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
