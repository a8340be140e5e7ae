// internal/tenant/context.go

// Package tenant carries the resolved current organization through request
// context. The binding is explicit: repositories never consult it on their
// own, callers read it and pass the organization id into scoped queries.
package tenant

import (
	"context"

	"github.com/bitvara/backoffice/internal/model"
)

type contextKey string

const organizationKey = contextKey("backoffice_current_organization")

// WithOrganization returns a context bound to the resolved organization.
func WithOrganization(ctx context.Context, org *model.Organization) context.Context {
	return context.WithValue(ctx, organizationKey, org)
}

// FromContext returns the bound organization, or nil when no resolution
// succeeded for this request.
func FromContext(ctx context.Context) *model.Organization {
	org, ok := ctx.Value(organizationKey).(*model.Organization)
	if !ok {
		return nil
	}
	return org
}
