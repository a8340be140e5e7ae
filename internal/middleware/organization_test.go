package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/mocks"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gateFixture struct {
	resolver *authz.Resolver
	gate     *authz.Gate
	orgs     *mocks.MockOrganizationRepositoryIface
	members  *mocks.MockMembershipRepositoryIface
	subs     *mocks.MockSubscriptionRepositoryIface
	plans    *mocks.MockPlanRepositoryIface
}

func newGateFixture(ctrl *gomock.Controller) gateFixture {
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)
	members := mocks.NewMockMembershipRepositoryIface(ctrl)
	subs := mocks.NewMockSubscriptionRepositoryIface(ctrl)
	plans := mocks.NewMockPlanRepositoryIface(ctrl)

	return gateFixture{
		resolver: authz.NewResolver(orgs, members),
		gate:     authz.NewGate(subs, plans, members),
		orgs:     orgs,
		members:  members,
		subs:     subs,
		plans:    plans,
	}
}

func serveWithModule(f gateFixture, user *model.User, req *http.Request) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.RequireModule(f.resolver, f.gate, "client-management")(next)
	if user != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireModule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	user := &model.User{ID: uuid.New()}
	plan := model.Plan{ID: uuid.New(), Slug: "pro"}

	t.Run("passes and binds the organization", func(t *testing.T) {
		f := newGateFixture(ctrl)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		sub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(sub, nil).Times(2)
		f.plans.EXPECT().HasModule(gomock.Any(), plan.ID, "client-management").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set(middleware.OrganizationHeader, org.ID.String())

		rec := serveWithModule(f, user, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no user is 401", func(t *testing.T) {
		f := newGateFixture(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set(middleware.OrganizationHeader, org.ID.String())

		rec := serveWithModule(f, nil, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no organization candidate is 400", func(t *testing.T) {
		f := newGateFixture(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		rec := serveWithModule(f, user, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown organization is 404", func(t *testing.T) {
		f := newGateFixture(ctrl)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(nil, domain.ErrOrganizationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set(middleware.OrganizationHeader, org.ID.String())

		rec := serveWithModule(f, user, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-member is 403", func(t *testing.T) {
		f := newGateFixture(ctrl)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(nil, domain.ErrMembershipNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set(middleware.OrganizationHeader, org.ID.String())

		rec := serveWithModule(f, user, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no subscription is 402 with upgrade payload", func(t *testing.T) {
		f := newGateFixture(ctrl)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		f.subs.EXPECT().
			CurrentForOrganization(gomock.Any(), org.ID).
			Return(nil, domain.ErrSubscriptionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set(middleware.OrganizationHeader, org.ID.String())

		rec := serveWithModule(f, user, req)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, true, payload["requires_upgrade"])
		assert.Equal(t, org.ID.String(), payload["organization_id"])
	})

	t.Run("missing module is 402 naming the module", func(t *testing.T) {
		f := newGateFixture(ctrl)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)
		sub := &model.Subscription{OrganizationID: org.ID, PlanID: plan.ID, Status: model.SubscriptionActive, Plan: plan}
		f.subs.EXPECT().CurrentForOrganization(gomock.Any(), org.ID).Return(sub, nil).Times(2)
		f.plans.EXPECT().HasModule(gomock.Any(), plan.ID, "client-management").Return(false, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		req.Header.Set(middleware.OrganizationHeader, org.ID.String())

		rec := serveWithModule(f, user, req)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "client-management", payload["module"])
	})
}

func TestOrganizationContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	user := &model.User{ID: uuid.New()}

	t.Run("binds from cookie", func(t *testing.T) {
		f := newGateFixture(ctrl)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.members.EXPECT().
			Find(gomock.Any(), org.ID, user.ID).
			Return(&model.Membership{OrganizationID: org.ID, UserID: user.ID, Role: model.RoleStaff}, nil)

		var bound *model.Organization
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bound = tenant.FromContext(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
		req.AddCookie(&http.Cookie{Name: middleware.OrganizationCookie, Value: org.ID.String()})
		req = req.WithContext(middleware.WithUser(req.Context(), user))

		middleware.OrganizationContext(f.resolver)(next).ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, bound)
		assert.Equal(t, org.ID, bound.ID)
	})

	t.Run("resolution failure leaves context unbound", func(t *testing.T) {
		f := newGateFixture(ctrl)

		var called bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, tenant.FromContext(r.Context()))
		})

		req := httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), user))

		middleware.OrganizationContext(f.resolver)(next).ServeHTTP(httptest.NewRecorder(), req)
		assert.True(t, called)
	})
}
