package service_test

import (
	"context"
	"testing"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/mocks"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type memberFixture struct {
	svc     *service.MemberService
	members *mocks.MockMembershipRepositoryIface
	users   *mocks.MockUserRepositoryIface
	subs    *mocks.MockSubscriptionRepositoryIface
	plans   *mocks.MockPlanRepositoryIface
}

func newMemberFixture(ctrl *gomock.Controller) memberFixture {
	members := mocks.NewMockMembershipRepositoryIface(ctrl)
	users := mocks.NewMockUserRepositoryIface(ctrl)
	subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)
	plans := mocks.NewMockPlanRepositoryIface(ctrl)

	svc := service.NewMemberService(
		members,
		users,
		authz.NewPolicy(members),
		authz.NewGate(subs, plans, members),
		auth.NewPasswordHasher(),
		nil,
		&config.Config{BaseURL: "https://app.example.com"},
	)
	return memberFixture{svc: svc, members: members, users: users, subs: subs, plans: plans}
}

func intPtr(v int) *int { return &v }

func adminMembership(orgID, userID uuid.UUID) *model.Membership {
	return &model.Membership{OrganizationID: orgID, UserID: userID, Role: model.RoleAdmin, IsActive: true}
}

func TestMemberAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	actor := &model.User{ID: uuid.New()}
	plan := model.Plan{ID: uuid.New(), Slug: "basic", MemberLimit: intPtr(5)}
	activeSub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}

	t.Run("existing user becomes a member", func(t *testing.T) {
		f := newMemberFixture(ctrl)
		existing := &model.User{ID: uuid.New(), Email: "new@example.com", Name: "New Person"}

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(activeSub, nil)
		f.members.EXPECT().CountActiveForOrganization(gomock.Any(), org.ID).Return(int64(2), nil)
		f.users.EXPECT().FindByEmail(gomock.Any(), "new@example.com").Return(existing, nil)
		f.members.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *model.Membership) error {
				assert.Equal(t, org.ID, m.OrganizationID)
				assert.Equal(t, existing.ID, m.UserID)
				assert.Equal(t, model.RoleStaff, m.Role)
				assert.True(t, m.IsActive)
				assert.False(t, m.JoinedAt.IsZero())
				return nil
			})

		membership, err := f.svc.Add(context.Background(), actor, org, service.AddMemberInput{
			Email: "new@example.com",
			Role:  "staff",
		})
		assert.NoError(t, err)
		assert.Equal(t, existing.ID, membership.UserID)
	})

	t.Run("unknown email creates an invited account", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(activeSub, nil)
		f.members.EXPECT().CountActiveForOrganization(gomock.Any(), org.ID).Return(int64(2), nil)
		f.users.EXPECT().FindByEmail(gomock.Any(), "invitee@example.com").Return(nil, domain.ErrUserNotFound)
		f.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, "invitee@example.com", u.Email)
				assert.Equal(t, "Invitee", u.Name)
				assert.NotEmpty(t, u.PasswordHash)
				u.ID = uuid.New()
				return nil
			})
		f.members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Add(context.Background(), actor, org, service.AddMemberInput{
			Email: "invitee@example.com",
			Name:  "Invitee",
			Role:  "staff",
		})
		assert.NoError(t, err)
	})

	t.Run("member limit reached denies before any write", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(activeSub, nil)
		f.members.EXPECT().CountActiveForOrganization(gomock.Any(), org.ID).Return(int64(5), nil)

		_, err := f.svc.Add(context.Background(), actor, org, service.AddMemberInput{
			Email: "late@example.com",
			Role:  "staff",
		})
		assert.ErrorIs(t, err, domain.ErrPaymentRequired)

		var gateErr *domain.GateError
		assert.ErrorAs(t, err, &gateErr)
		assert.Equal(t, 5, *gateErr.Limit)
	})

	t.Run("invalid role rejected before policy check", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		_, err := f.svc.Add(context.Background(), actor, org, service.AddMemberInput{
			Email: "any@example.com",
			Role:  "emperor",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("staff cannot add members", func(t *testing.T) {
		f := newMemberFixture(ctrl)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: actor.ID, Role: model.RoleStaff}, nil)

		_, err := f.svc.Add(context.Background(), actor, org, service.AddMemberInput{
			Email: "any@example.com",
			Role:  "staff",
		})
		assert.ErrorIs(t, err, domain.ErrActionNotAllowed)
	})

	t.Run("duplicate membership surfaces conflict", func(t *testing.T) {
		f := newMemberFixture(ctrl)
		existing := &model.User{ID: uuid.New(), Email: "dup@example.com"}

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(activeSub, nil)
		f.members.EXPECT().CountActiveForOrganization(gomock.Any(), org.ID).Return(int64(2), nil)
		f.users.EXPECT().FindByEmail(gomock.Any(), "dup@example.com").Return(existing, nil)
		f.members.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyMember)

		_, err := f.svc.Add(context.Background(), actor, org, service.AddMemberInput{
			Email: "dup@example.com",
			Role:  "staff",
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})
}

func TestMemberUpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	actor := &model.User{ID: uuid.New()}
	target := uuid.New()

	t.Run("admin promotes staff", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, target).
			Return(&model.Membership{OrganizationID: org.ID, UserID: target, Role: model.RoleStaff}, nil)
		f.members.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *model.Membership) error {
				assert.Equal(t, model.RoleAdmin, m.Role)
				return nil
			})

		membership, err := f.svc.UpdateRole(context.Background(), actor, org, target, service.UpdateMemberRoleInput{Role: "admin"})
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, membership.Role)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, target).
			Return(nil, domain.ErrMembershipNotFound)

		_, err := f.svc.UpdateRole(context.Background(), actor, org, target, service.UpdateMemberRoleInput{Role: "admin"})
		assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
	})
}

func TestMemberRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	actor := &model.User{ID: uuid.New()}
	target := uuid.New()

	t.Run("admin removes staff", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, target).
			Return(&model.Membership{OrganizationID: org.ID, UserID: target, Role: model.RoleStaff}, nil)
		f.members.EXPECT().Delete(gomock.Any(), org.ID, target).Return(nil)

		assert.NoError(t, f.svc.Remove(context.Background(), actor, org, target))
	})

	t.Run("cannot remove self", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)

		err := f.svc.Remove(context.Background(), actor, org, actor.ID)
		assert.ErrorIs(t, err, domain.ErrCannotRemoveSelf)
	})

	t.Run("superadmin may remove themselves", func(t *testing.T) {
		f := newMemberFixture(ctrl)
		superadmin := &model.User{ID: uuid.New(), IsSuperadmin: true}

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, superadmin.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: superadmin.ID, Role: model.RoleStaff}, nil)
		f.members.EXPECT().Delete(gomock.Any(), org.ID, superadmin.ID).Return(nil)

		assert.NoError(t, f.svc.Remove(context.Background(), superadmin, org, superadmin.ID))
	})

	t.Run("removing the last owner is allowed", func(t *testing.T) {
		f := newMemberFixture(ctrl)

		f.members.EXPECT().
			Find(gomock.Any(), org.ID, actor.ID).
			Return(adminMembership(org.ID, actor.ID), nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, target).
			Return(&model.Membership{OrganizationID: org.ID, UserID: target, Role: model.RoleOwner}, nil)
		f.members.EXPECT().
			CountActiveWithRoles(gomock.Any(), org.ID, model.RoleOwner).
			Return(int64(1), nil)
		f.members.EXPECT().Delete(gomock.Any(), org.ID, target).Return(nil)

		assert.NoError(t, f.svc.Remove(context.Background(), actor, org, target))
	})
}
