package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/mocks"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserService(users *mocks.MockUserRepositoryIface) *service.UserService {
	return service.NewUserService(
		users,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test-secret", time.Hour),
		nil,
		&config.Config{BaseURL: "https://app.example.com"},
	)
}

func TestUserSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates the user and issues a token", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, "Jo Doe", u.Name)
				assert.Equal(t, "jo@example.com", u.Email)
				assert.NotEmpty(t, u.PasswordHash)
				assert.NotEqual(t, "hunter2hunter2", u.PasswordHash)
				u.ID = uuid.New()
				return nil
			})

		out, err := newUserService(users).Signup(context.Background(), service.SignupInput{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, "jo@example.com", out.User.Email)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		svc := newUserService(mocks.NewMockUserRepositoryIface(ctrl))

		_, err := svc.Signup(context.Background(), service.SignupInput{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "short",
		})
		assert.Error(t, err)
	})

	t.Run("duplicate email surfaces conflict", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrEmailAlreadyExists)

		_, err := newUserService(users).Signup(context.Background(), service.SignupInput{
			Name:     "Jo Doe",
			Email:    "jo@example.com",
			Password: "hunter2hunter2",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("hunter2hunter2")
	require.NoError(t, err)

	account := &model.User{ID: uuid.New(), Email: "jo@example.com", PasswordHash: hash}

	t.Run("valid credentials", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "jo@example.com").Return(account, nil)

		out, err := newUserService(users).Login(context.Background(), service.LoginInput{
			Email:    "jo@example.com",
			Password: "hunter2hunter2",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, account.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "jo@example.com").Return(account, nil)

		_, err := newUserService(users).Login(context.Background(), service.LoginInput{
			Email:    "jo@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := newUserService(users).Login(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever1234",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestPromoteSuperadmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("flips the flag once", func(t *testing.T) {
		account := &model.User{ID: uuid.New(), Email: "root@example.com"}
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "root@example.com").Return(account, nil)
		users.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.True(t, u.IsSuperadmin)
				return nil
			})

		promoted, err := newUserService(users).PromoteSuperadmin(context.Background(), "root@example.com")
		require.NoError(t, err)
		assert.True(t, promoted.IsSuperadmin)
	})

	t.Run("already superadmin is a no-op", func(t *testing.T) {
		account := &model.User{ID: uuid.New(), Email: "root@example.com", IsSuperadmin: true}
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "root@example.com").Return(account, nil)

		promoted, err := newUserService(users).PromoteSuperadmin(context.Background(), "root@example.com")
		require.NoError(t, err)
		assert.True(t, promoted.IsSuperadmin)
	})
}
