// internal/model/organization.go
package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleStaff, RoleClient:
		return true
	}
	return false
}

// CanManage reports whether the role can manage the organization itself
// (members, subscription, settings).
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

type Organization struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:text;not null" json:"name"`
	Slug      string         `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Email     string         `gorm:"type:text" json:"email"`
	Phone     string         `gorm:"type:text" json:"phone"`
	Address   string         `gorm:"type:text" json:"address"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null" json:"owner_id"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Owner       User         `gorm:"foreignKey:OwnerID" json:"-"`
	Memberships []Membership `gorm:"foreignKey:OrganizationID" json:"-"`
}

// BeforeCreate derives the slug from the name when the caller left it empty.
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.Slug == "" {
		o.Slug = Slugify(o.Name)
	}
	return nil
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(name string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Membership associates a user with an organization and carries the role.
// A user holds exactly one role per organization.
type Membership struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user" json:"organization_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_org_user" json:"user_id"`
	Role           Role      `gorm:"type:text;not null" json:"role"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	JoinedAt       time.Time `gorm:"not null" json:"joined_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// OrganizationPermission is a custom named permission key scoped to one
// organization. The key is unique per organization, not globally.
type OrganizationPermission struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_permission_key" json:"organization_id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Key            string    `gorm:"type:text;not null;uniqueIndex:idx_org_permission_key" json:"key"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
