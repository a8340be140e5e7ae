// internal/service/member.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bitvara/backoffice/internal/auth"
	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/config"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/email"
	"github.com/bitvara/backoffice/internal/email/mailer"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MemberService struct {
	members        repository.MembershipRepositoryIface
	users          repository.UserRepositoryIface
	policy         *authz.Policy
	gate           *authz.Gate
	passwordHasher *auth.PasswordHasher
	emailService   email.Sender
	config         *config.Config
	validate       *validator.Validate
}

func NewMemberService(
	members repository.MembershipRepositoryIface,
	users repository.UserRepositoryIface,
	policy *authz.Policy,
	gate *authz.Gate,
	passwordHasher *auth.PasswordHasher,
	emailService email.Sender,
	config *config.Config,
) *MemberService {
	return &MemberService{
		members:        members,
		users:          users,
		policy:         policy,
		gate:           gate,
		passwordHasher: passwordHasher,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type AddMemberInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role" validate:"required"`
}

type MemberListOutput struct {
	Members     []*model.Membership `json:"members"`
	ActiveCount int64               `json:"active_count"`
	MemberLimit *int                `json:"member_limit"`
}

// List returns the organization's memberships with the active headcount
// and the plan's member limit, so callers can render remaining seats.
func (s *MemberService) List(ctx context.Context, user *model.User, org *model.Organization) (*MemberListOutput, error) {
	decision, err := s.policy.CanViewOrganization(ctx, user, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrOrganizationAccessDenied
	}

	members, err := s.members.ListForOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	count, err := s.members.CountActiveForOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	out := &MemberListOutput{Members: members, ActiveCount: count}
	if plan, err := s.gate.CurrentPlan(ctx, org); err == nil && plan != nil {
		out.MemberLimit = plan.MemberLimit
	}
	return out, nil
}

// Add attaches a user to the organization, creating the account with a
// temporary password when no user holds the email yet. The plan's member
// limit is enforced before anything is written.
func (s *MemberService) Add(ctx context.Context, actor *model.User, org *model.Organization, input AddMemberInput) (*model.Membership, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	role := model.Role(input.Role)
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	decision, err := s.policy.CanManageMembers(ctx, actor, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	if err := s.gate.CheckMemberLimit(ctx, actor, org); err != nil {
		return nil, err
	}

	var tempPassword string
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user, tempPassword, err = s.createInvitedUser(ctx, input)
		if err != nil {
			return nil, err
		}
	}

	membership := &model.Membership{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Role:           role,
		IsActive:       true,
		JoinedAt:       time.Now(),
	}
	if err := s.members.Create(ctx, membership); err != nil {
		return nil, err
	}
	membership.User = *user

	if s.emailService != nil {
		err := mailer.SendInviteEmail(s.emailService, user.Email, mailer.InviteTemplateData{
			Name:              user.Name,
			OrganizationName:  org.Name,
			Role:              string(role),
			TemporaryPassword: tempPassword,
			LoginLink:         s.config.BaseURL + "/login",
		})
		if err != nil {
			slog.Warn("sending invite email", "organization_id", org.ID, "user_id", user.ID, "error", err)
		}
	}

	return membership, nil
}

type UpdateMemberRoleInput struct {
	Role string `json:"role" validate:"required"`
}

// UpdateRole changes an existing member's role.
func (s *MemberService) UpdateRole(ctx context.Context, actor *model.User, org *model.Organization, userID uuid.UUID, input UpdateMemberRoleInput) (*model.Membership, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	role := model.Role(input.Role)
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}

	decision, err := s.policy.CanManageMembers(ctx, actor, org)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, domain.ErrActionNotAllowed
	}

	membership, err := s.members.Find(ctx, org.ID, userID)
	if err != nil {
		return nil, err
	}

	membership.Role = role
	if err := s.members.Update(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

// Remove detaches a member. Non-superadmins cannot remove themselves.
// Removing the last owner is allowed but logged, since the organization
// keeps functioning for superadmins.
func (s *MemberService) Remove(ctx context.Context, actor *model.User, org *model.Organization, userID uuid.UUID) error {
	decision, err := s.policy.CanManageMembers(ctx, actor, org)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return domain.ErrActionNotAllowed
	}

	if actor != nil && actor.ID == userID && !actor.IsSuperadmin {
		return domain.ErrCannotRemoveSelf
	}

	membership, err := s.members.Find(ctx, org.ID, userID)
	if err != nil {
		return err
	}

	if membership.Role == model.RoleOwner {
		owners, err := s.members.CountActiveWithRoles(ctx, org.ID, model.RoleOwner)
		if err != nil {
			return err
		}
		if owners <= 1 {
			slog.Warn("removing last owner of organization",
				"organization_id", org.ID, "user_id", userID)
		}
	}

	return s.members.Delete(ctx, org.ID, userID)
}

func (s *MemberService) createInvitedUser(ctx context.Context, input AddMemberInput) (*model.User, string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", fmt.Errorf("generating temporary password: %w", err)
	}
	tempPassword := hex.EncodeToString(raw)

	hash, err := s.passwordHasher.Hash(tempPassword)
	if err != nil {
		return nil, "", fmt.Errorf("hashing temporary password: %w", err)
	}

	name := input.Name
	if name == "" {
		name = input.Email
	}

	user := &model.User{
		Name:         name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	return user, tempPassword, nil
}
