// internal/service/subscription.go
package service

import (
	"context"
	"time"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
)

type SubscriptionService struct {
	subs     repository.SubscriptionRepositoryIface
	plans    repository.PlanRepositoryIface
	policy   *authz.Policy
	validate *validator.Validate
	now      func() time.Time
}

func NewSubscriptionService(
	subs repository.SubscriptionRepositoryIface,
	plans repository.PlanRepositoryIface,
	policy *authz.Policy,
) *SubscriptionService {
	return &SubscriptionService{
		subs:     subs,
		plans:    plans,
		policy:   policy,
		validate: validator.New(),
		now:      time.Now,
	}
}

type SubscribeInput struct {
	PlanSlug  string `json:"plan_slug" validate:"required"`
	TrialDays int    `json:"trial_days" validate:"omitempty,min=0,max=365"`
}

// Current returns the organization's active subscription with its plan.
func (s *SubscriptionService) Current(ctx context.Context, user *model.User, org *model.Organization) (*model.Subscription, error) {
	decision, err := s.policy.CanViewOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrOrganizationAccessDenied
	}
	return s.subs.CurrentForOrganization(ctx, org.ID)
}

// History lists every subscription row, newest first.
func (s *SubscriptionService) History(ctx context.Context, user *model.User, org *model.Organization) ([]*model.Subscription, error) {
	decision, err := s.policy.CanViewOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrOrganizationAccessDenied
	}
	return s.subs.ListForOrganization(ctx, org.ID)
}

// Subscribe enrolls the organization in a plan. Any active subscription is
// cancelled in the same transaction that inserts the new one, so at most
// one subscription gates as active afterwards. The new subscription runs
// for one billing period of the plan from now.
func (s *SubscriptionService) Subscribe(ctx context.Context, user *model.User, org *model.Organization, input SubscribeInput) (*model.Subscription, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	decision, err := s.policy.CanManageSubscription(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	plan, err := s.plans.FindBySlug(ctx, input.PlanSlug)
	if err != nil {
		return nil, err
	}

	now := s.now()
	endsAt := plan.BillingCycle.AddPeriod(now)

	sub := &model.Subscription{
		OrganizationID: org.ID,
		PlanID:         plan.ID,
		Status:         model.SubscriptionActive,
		StartsAt:       now,
		EndsAt:         &endsAt,
	}
	if input.TrialDays > 0 {
		trialEnds := now.AddDate(0, 0, input.TrialDays)
		sub.TrialEndsAt = &trialEnds
	}

	if err := s.subs.Supersede(ctx, sub); err != nil {
		return nil, err
	}
	sub.Plan = *plan
	return sub, nil
}

// Cancel marks the current subscription cancelled immediately. Cancelling
// again just re-stamps cancelled_at.
func (s *SubscriptionService) Cancel(ctx context.Context, user *model.User, org *model.Organization) (*model.Subscription, error) {
	decision, err := s.policy.CanManageSubscription(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	sub, err := s.subs.CurrentForOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sub.Status = model.SubscriptionCancelled
	sub.CancelledAt = &now
	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Renew extends the current subscription by one billing period. The
// extension is anchored on whichever is later, the current ends_at or now,
// so early renewals add time and late renewals restart from today.
func (s *SubscriptionService) Renew(ctx context.Context, user *model.User, org *model.Organization) (*model.Subscription, error) {
	decision, err := s.policy.CanManageSubscription(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	sub, err := s.subs.CurrentForOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	base := now
	if sub.EndsAt != nil && sub.EndsAt.After(now) {
		base = *sub.EndsAt
	}
	endsAt := sub.Plan.BillingCycle.AddPeriod(base)
	sub.EndsAt = &endsAt

	if err := s.subs.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
