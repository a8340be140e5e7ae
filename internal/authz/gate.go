// internal/authz/gate.go
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/google/uuid"
)

// UsageCounter derives the current usage count for a feature key. The gate
// calls it at check time so limits are always compared against a fresh
// count instead of trusting the caller.
type UsageCounter func(ctx context.Context, orgID uuid.UUID) (int, error)

// Gate composes the independent predicates that guard business actions:
// authentication, organization access, active subscription, module access
// and member/feature limits. Predicates never mutate state, and call sites
// evaluate them in that fixed order, stopping at the first failure.
type Gate struct {
	subs     repository.SubscriptionRepositoryIface
	plans    repository.PlanRepositoryIface
	members  repository.MembershipRepositoryIface
	counters map[string]UsageCounter
}

func NewGate(
	subs repository.SubscriptionRepositoryIface,
	plans repository.PlanRepositoryIface,
	members repository.MembershipRepositoryIface,
) *Gate {
	return &Gate{
		subs:     subs,
		plans:    plans,
		members:  members,
		counters: make(map[string]UsageCounter),
	}
}

// RegisterCounter binds a feature key to its usage query.
func (g *Gate) RegisterCounter(featureKey string, counter UsageCounter) {
	g.counters[featureKey] = counter
}

// CheckAccess verifies the caller identity and organization membership.
// Superadmins bypass the membership check.
func (g *Gate) CheckAccess(ctx context.Context, user *model.User, org *model.Organization) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if user.IsSuperadmin {
		return nil
	}

	if _, err := g.members.Find(ctx, org.ID, user.ID); err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return domain.ErrOrganizationAccessDenied
		}
		return err
	}
	return nil
}

// CurrentPlan returns the plan of the organization's current active
// subscription, or nil when the organization has none.
func (g *Gate) CurrentPlan(ctx context.Context, org *model.Organization) (*model.Plan, error) {
	sub, err := g.subs.CurrentForOrganization(ctx, org.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding current subscription: %w", err)
	}
	return &sub.Plan, nil
}

// CheckSubscription fails with a payment-required gate error when the
// organization has no subscription gating as active.
func (g *Gate) CheckSubscription(ctx context.Context, org *model.Organization) error {
	if _, err := g.subs.CurrentForOrganization(ctx, org.ID); err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return domain.NewSubscriptionRequiredError(org.ID.String())
		}
		return err
	}
	return nil
}

// CheckModule verifies the current plan links moduleSlug with
// is_enabled=true. Failures name the module so responses can surface it.
func (g *Gate) CheckModule(ctx context.Context, org *model.Organization, moduleSlug string) error {
	plan, err := g.CurrentPlan(ctx, org)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.NewSubscriptionRequiredError(org.ID.String())
	}

	enabled, err := g.plans.HasModule(ctx, plan.ID, moduleSlug)
	if err != nil {
		return err
	}
	if !enabled {
		return domain.NewModuleNotAvailableError(org.ID.String(), moduleSlug)
	}
	return nil
}

// CheckMemberLimit refuses a new member admission when the count of
// active-flagged memberships already meets the plan's member limit. A nil
// limit is unlimited; superadmins bypass. Existing members are never
// removed by this check.
func (g *Gate) CheckMemberLimit(ctx context.Context, user *model.User, org *model.Organization) error {
	if user != nil && user.IsSuperadmin {
		return nil
	}

	plan, err := g.CurrentPlan(ctx, org)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.NewMemberLimitReachedError(org.ID.String(), nil)
	}
	if plan.MemberLimit == nil {
		return nil
	}

	count, err := g.members.CountActiveForOrganization(ctx, org.ID)
	if err != nil {
		return err
	}
	if count >= int64(*plan.MemberLimit) {
		return domain.NewMemberLimitReachedError(org.ID.String(), plan.MemberLimit)
	}
	return nil
}

// CheckFeatureLimit derives the current usage through the counter
// registered for featureKey and compares it against the plan's limit.
func (g *Gate) CheckFeatureLimit(ctx context.Context, org *model.Organization, featureKey string) error {
	counter, ok := g.counters[featureKey]
	if !ok {
		return fmt.Errorf("no usage counter registered for feature %q", featureKey)
	}

	count, err := counter(ctx, org.ID)
	if err != nil {
		return fmt.Errorf("counting usage for feature %q: %w", featureKey, err)
	}
	return g.CheckFeatureLimitWithCount(ctx, org, featureKey, count)
}

// CheckFeatureLimitWithCount compares a caller-supplied usage count against
// the plan's limit for featureKey. Admission requires the count to be
// strictly below the limit; a missing limit row means unlimited, and a
// missing plan denies. Callers must supply a count that is fresh at check
// time.
func (g *Gate) CheckFeatureLimitWithCount(ctx context.Context, org *model.Organization, featureKey string, currentCount int) error {
	plan, err := g.CurrentPlan(ctx, org)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.NewFeatureLimitReachedError(org.ID.String(), featureKey, nil)
	}

	limit, err := g.plans.FindFeatureLimit(ctx, plan.ID, featureKey)
	if err != nil {
		return err
	}
	if limit == nil || limit.IsUnlimited() {
		return nil
	}
	if currentCount >= *limit.LimitValue {
		return domain.NewFeatureLimitReachedError(org.ID.String(), featureKey, limit.LimitValue)
	}
	return nil
}
