package service_test

import (
	"context"
	"testing"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/mocks"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type clientFixture struct {
	svc     *service.ClientService
	clients *mocks.MockClientRepositoryIface
	subs    *mocks.MockSubscriptionRepositoryIface
	plans   *mocks.MockPlanRepositoryIface
	members *mocks.MockMembershipRepositoryIface
	gate    *authz.Gate
}

func newClientFixture(ctrl *gomock.Controller) clientFixture {
	clients := mocks.NewMockClientRepositoryIface(ctrl)
	subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)
	plans := mocks.NewMockPlanRepositoryIface(ctrl)
	members := mocks.NewMockMembershipRepositoryIface(ctrl)

	gate := authz.NewGate(subs, plans, members)
	gate.RegisterCounter(service.FeatureClientsLimit, func(ctx context.Context, orgID uuid.UUID) (int, error) {
		count, err := clients.CountForOrganization(ctx, orgID)
		return int(count), err
	})

	return clientFixture{
		svc:     service.NewClientService(clients, gate),
		clients: clients,
		subs:    subs,
		plans:   plans,
		members: members,
		gate:    gate,
	}
}

func (f clientFixture) expectModulePass(org *model.Organization, user *model.User, plan model.Plan) {
	f.members.EXPECT().
		Find(gomock.Any(), org.ID, user.ID).
		Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
	sub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}
	f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(sub, nil).Times(2)
	f.plans.EXPECT().HasModule(gomock.Any(), plan.ID, service.ModuleClientManagement).Return(true, nil)
}

func TestClientList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	user := &model.User{ID: uuid.New()}
	plan := model.Plan{ID: uuid.New(), Slug: "pro"}

	t.Run("module gate passes through to the repository", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.expectModulePass(org, user, plan)
		f.clients.EXPECT().
			ListForOrganization(gomock.Any(), org.ID, 0, 25).
			Return([]*model.Client{{ID: uuid.New(), OrganizationID: org.ID, Name: "Client A"}}, int64(1), nil)

		out, err := f.svc.List(context.Background(), user, org, 0, 25)
		require.NoError(t, err)
		assert.Len(t, out.Clients, 1)
		assert.Equal(t, int64(1), out.Total)
	})

	t.Run("plan without the module is blocked", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		sub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(sub, nil).Times(2)
		f.plans.EXPECT().HasModule(gomock.Any(), plan.ID, service.ModuleClientManagement).Return(false, nil)

		_, err := f.svc.List(context.Background(), user, org, 0, 25)
		assert.ErrorIs(t, err, domain.ErrPaymentRequired)

		var gateErr *domain.GateError
		assert.ErrorAs(t, err, &gateErr)
		assert.Equal(t, service.ModuleClientManagement, gateErr.Module)
	})

	t.Run("expired subscription is blocked before the module check", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		f.subs.EXPECT().
			CurrentForOrganization(gomock.Any(), org.ID).
			Return(nil, domain.ErrSubscriptionNotFound)

		_, err := f.svc.List(context.Background(), user, org, 0, 25)
		assert.ErrorIs(t, err, domain.ErrPaymentRequired)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(nil, domain.ErrMembershipNotFound)

		_, err := f.svc.List(context.Background(), user, org, 0, 25)
		assert.ErrorIs(t, err, domain.ErrOrganizationAccessDenied)
	})
}

func TestClientCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	user := &model.User{ID: uuid.New()}
	plan := model.Plan{ID: uuid.New(), Slug: "basic"}

	t.Run("stores the client under the limit", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		sub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(sub, nil).Times(3)
		f.plans.EXPECT().HasModule(gomock.Any(), plan.ID, service.ModuleClientManagement).Return(true, nil)
		f.clients.EXPECT().CountForOrganization(gomock.Any(), org.ID).Return(int64(49), nil)
		f.plans.EXPECT().
			FindFeatureLimit(gomock.Any(), plan.ID, service.FeatureClientsLimit).
			Return(&model.FeatureLimit{PlanID: plan.ID, FeatureKey: service.FeatureClientsLimit, LimitValue: intPtr(50)}, nil)
		f.clients.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Client) error {
				assert.Equal(t, org.ID, c.OrganizationID)
				assert.Equal(t, "Client A", c.Name)
				assert.Equal(t, "active", c.Status)
				return nil
			})

		created, err := f.svc.Create(context.Background(), user, org, service.ClientInput{Name: "Client A"})
		require.NoError(t, err)
		assert.Equal(t, "active", created.Status)
	})

	t.Run("at the clients limit is blocked", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		sub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(sub, nil).Times(3)
		f.plans.EXPECT().HasModule(gomock.Any(), plan.ID, service.ModuleClientManagement).Return(true, nil)
		f.clients.EXPECT().CountForOrganization(gomock.Any(), org.ID).Return(int64(50), nil)
		f.plans.EXPECT().
			FindFeatureLimit(gomock.Any(), plan.ID, service.FeatureClientsLimit).
			Return(&model.FeatureLimit{PlanID: plan.ID, FeatureKey: service.FeatureClientsLimit, LimitValue: intPtr(50)}, nil)

		_, err := f.svc.Create(context.Background(), user, org, service.ClientInput{Name: "One Too Many"})
		assert.ErrorIs(t, err, domain.ErrPaymentRequired)

		var gateErr *domain.GateError
		assert.ErrorAs(t, err, &gateErr)
		assert.Equal(t, service.FeatureClientsLimit, gateErr.FeatureKey)
		assert.Equal(t, 50, *gateErr.Limit)
	})

	t.Run("name required", func(t *testing.T) {
		f := newClientFixture(ctrl)

		_, err := f.svc.Create(context.Background(), user, org, service.ClientInput{})
		assert.Error(t, err)
	})
}

func TestClientDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	user := &model.User{ID: uuid.New()}
	plan := model.Plan{ID: uuid.New(), Slug: "pro"}

	t.Run("unknown client", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.expectModulePass(org, user, plan)

		id := uuid.New()
		f.clients.EXPECT().
			FindForOrganization(gomock.Any(), org.ID, id).
			Return(nil, domain.ErrClientNotFound)

		err := f.svc.Delete(context.Background(), user, org, id)
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})

	t.Run("deletes within the organization scope only", func(t *testing.T) {
		f := newClientFixture(ctrl)
		f.expectModulePass(org, user, plan)

		id := uuid.New()
		f.clients.EXPECT().
			FindForOrganization(gomock.Any(), org.ID, id).
			Return(&model.Client{ID: id, OrganizationID: org.ID}, nil)
		f.clients.EXPECT().Delete(gomock.Any(), org.ID, id).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), user, org, id))
	})
}
