// internal/model/audit_log.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a mutating API request: who did what against which
// organization. Rows are append-only.
type AuditLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ActorID        *uuid.UUID `gorm:"type:uuid;index" json:"actor_id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
	Method         string     `gorm:"type:text;not null" json:"method"`
	Path           string     `gorm:"type:text;not null" json:"path"`
	Status         int        `gorm:"not null" json:"status"`
	RequestID      string     `gorm:"type:text" json:"request_id"`
	CreatedAt      time.Time  `json:"created_at"`
}
