package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/handler"
	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/mocks"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthHandler(ctrl *gomock.Controller) (*handler.AuthHandler, *mocks.MockOrganizationRepositoryIface) {
	users := mocks.NewMockUserRepositoryIface(ctrl)
	orgs := mocks.NewMockOrganizationRepositoryIface(ctrl)
	members := mocks.NewMockMembershipRepositoryIface(ctrl)

	userService := service.NewUserService(
		users,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test-secret", time.Hour),
		nil,
		&config.Config{},
	)
	orgService := service.NewOrganizationService(orgs, authz.NewPolicy(members))
	return handler.NewAuthHandler(userService, orgService), orgs
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the user with their organizations", func(t *testing.T) {
		h, orgs := newAuthHandler(ctrl)

		user := &model.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
		orgs.EXPECT().FindByUser(gomock.Any(), user.ID).Return([]model.Organization{
			{ID: uuid.New(), Name: "Acme", Slug: "acme"},
			{ID: uuid.New(), Name: "Globex", Slug: "globex"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middleware.WithUser(req.Context(), user))
		rec := httptest.NewRecorder()

		h.MeHandler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var payload struct {
			Ok            bool                 `json:"ok"`
			User          model.User           `json:"user"`
			Organizations []model.Organization `json:"organizations"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.True(t, payload.Ok)
		assert.Equal(t, user.Email, payload.User.Email)
		require.Len(t, payload.Organizations, 2)
		assert.Equal(t, "acme", payload.Organizations[0].Slug)
	})

	t.Run("rejects requests without a user", func(t *testing.T) {
		h, _ := newAuthHandler(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()

		h.MeHandler(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
