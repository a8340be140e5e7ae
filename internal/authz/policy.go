// internal/authz/policy.go
package authz

import (
	"context"
	"errors"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
)

// Decision is the outcome of a policy check. Reason is set when the
// decision denies.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Policy answers "may this user perform this action on this organization"
// with one function per action, so the owner/admin/superadmin union lives
// in exactly one place instead of being re-derived at call sites.
type Policy struct {
	members repository.MembershipRepositoryIface
}

func NewPolicy(members repository.MembershipRepositoryIface) *Policy {
	return &Policy{members: members}
}

// RoleOf returns the user's role in the organization, or ok=false for
// non-members. Callers must check membership before trusting a role
// comparison: hasRole on a non-member is false, which is ambiguous with
// "member without that role".
func (p *Policy) RoleOf(ctx context.Context, user *model.User, org *model.Organization) (model.Role, bool, error) {
	membership, err := p.members.Find(ctx, org.ID, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return membership.Role, true, nil
}

// BelongsTo reports whether a membership row exists for the pair,
// regardless of its active flag.
func (p *Policy) BelongsTo(ctx context.Context, user *model.User, org *model.Organization) (bool, error) {
	_, ok, err := p.RoleOf(ctx, user, org)
	return ok, err
}

// HasRole is exact equality against RoleOf.
func (p *Policy) HasRole(ctx context.Context, user *model.User, org *model.Organization, role model.Role) (bool, error) {
	actual, ok, err := p.RoleOf(ctx, user, org)
	if err != nil || !ok {
		return false, err
	}
	return actual == role, nil
}

func (p *Policy) CanViewOrganization(ctx context.Context, user *model.User, org *model.Organization) (Decision, error) {
	if user == nil {
		return deny("unauthenticated"), nil
	}
	if user.IsSuperadmin {
		return allow(), nil
	}
	ok, err := p.BelongsTo(ctx, user, org)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		return deny("not a member of this organization"), nil
	}
	return allow(), nil
}

// CanManageOrganization allows superadmins and org owners/admins.
func (p *Policy) CanManageOrganization(ctx context.Context, user *model.User, org *model.Organization) (Decision, error) {
	return p.requireManagingRole(ctx, user, org, "only owners and admins can manage the organization")
}

// CanManageMembers allows superadmins and org owners/admins.
func (p *Policy) CanManageMembers(ctx context.Context, user *model.User, org *model.Organization) (Decision, error) {
	return p.requireManagingRole(ctx, user, org, "only owners and admins can manage members")
}

// CanManageSubscription allows superadmins and org owners/admins.
func (p *Policy) CanManageSubscription(ctx context.Context, user *model.User, org *model.Organization) (Decision, error) {
	return p.requireManagingRole(ctx, user, org, "only owners and admins can manage subscriptions")
}

// CanDeleteOrganization allows superadmins and the owner role only.
func (p *Policy) CanDeleteOrganization(ctx context.Context, user *model.User, org *model.Organization) (Decision, error) {
	if user == nil {
		return deny("unauthenticated"), nil
	}
	if user.IsSuperadmin {
		return allow(), nil
	}
	role, ok, err := p.RoleOf(ctx, user, org)
	if err != nil {
		return Decision{}, err
	}
	if !ok || role != model.RoleOwner {
		return deny("only the owner can delete the organization"), nil
	}
	return allow(), nil
}

func (p *Policy) requireManagingRole(ctx context.Context, user *model.User, org *model.Organization, reason string) (Decision, error) {
	if user == nil {
		return deny("unauthenticated"), nil
	}
	if user.IsSuperadmin {
		return allow(), nil
	}
	role, ok, err := p.RoleOf(ctx, user, org)
	if err != nil {
		return Decision{}, err
	}
	if !ok || !role.CanManage() {
		return deny(reason), nil
	}
	return allow(), nil
}
