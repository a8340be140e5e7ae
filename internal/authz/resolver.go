// internal/authz/resolver.go

// Package authz implements organization resolution, the plan/subscription
// permission gate, and per-action authorization policies.
package authz

import (
	"context"
	"errors"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/google/uuid"
)

// Candidates holds the organization identifier from each request source.
// Precedence is fixed: header, then query, then route, then session. An
// explicit per-request identifier always beats the sticky session value.
type Candidates struct {
	Header  string
	Query   string
	Route   string
	Session string
}

// first returns the highest-precedence non-empty candidate.
func (c Candidates) first() string {
	for _, v := range []string{c.Header, c.Query, c.Route, c.Session} {
		if v != "" {
			return v
		}
	}
	return ""
}

type Resolver struct {
	orgs    repository.OrganizationRepositoryIface
	members repository.MembershipRepositoryIface
}

func NewResolver(orgs repository.OrganizationRepositoryIface, members repository.MembershipRepositoryIface) *Resolver {
	return &Resolver{orgs: orgs, members: members}
}

// Resolve determines which organization the request acts against. The
// winning candidate must name an existing organization the user belongs to
// (superadmins belong everywhere). Errors are typed so callers that need
// exact failure responses can distinguish them; callers that only bind the
// ambient organization treat any failure as "none". Resolution never
// creates an organization.
func (r *Resolver) Resolve(ctx context.Context, user *model.User, c Candidates) (*model.Organization, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	candidate := c.first()
	if candidate == "" {
		return nil, domain.ErrNoOrganizationCandidate
	}

	orgID, err := uuid.Parse(candidate)
	if err != nil {
		return nil, domain.ErrOrganizationNotFound
	}

	org, err := r.orgs.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	if user.IsSuperadmin {
		return org, nil
	}

	if _, err := r.members.Find(ctx, org.ID, user.ID); err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, domain.ErrOrganizationAccessDenied
		}
		return nil, err
	}

	return org, nil
}

// Bind is the silent form used for ambient binding: every resolution
// failure collapses to nil without error.
func (r *Resolver) Bind(ctx context.Context, user *model.User, c Candidates) *model.Organization {
	org, err := r.Resolve(ctx, user, c)
	if err != nil {
		return nil
	}
	return org
}
