// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/email"
	"github.com/bitvara/backoffice/internal/email/mailer"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   email.Sender
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService email.Sender,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup registers a new user and issues a token.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	// Signup succeeds even when the welcome email can't be delivered.
	if s.emailService != nil {
		if err := mailer.SendWelcomeEmail(s.emailService, user.Email, user.Name, s.config.BaseURL+"/login"); err != nil {
			slog.Warn("sending welcome email", "user_id", user.ID, "error", err)
		}
	}

	return &SignupOutput{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords both surface as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// Me returns the user for a validated token subject.
func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// PromoteSuperadmin flips the superadmin flag on an existing account. Used
// by the CLI, never exposed over HTTP.
func (s *UserService) PromoteSuperadmin(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.IsSuperadmin {
		return user, nil
	}
	user.IsSuperadmin = true
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
