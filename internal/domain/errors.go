// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repositories and services. Handlers map them
// to HTTP status codes in one place.
var (
	ErrUnauthenticated          = errors.New("unauthenticated")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrOrganizationNotFound     = errors.New("organization not found")
	ErrSlugAlreadyExists        = errors.New("slug already exists")
	ErrOrganizationAccessDenied = errors.New("organization access denied")
	ErrActionNotAllowed         = errors.New("action not allowed")
	ErrNoOrganizationCandidate  = errors.New("no organization specified")
	ErrMembershipNotFound       = errors.New("membership not found")
	ErrAlreadyMember            = errors.New("user is already a member")
	ErrCannotRemoveSelf         = errors.New("cannot remove yourself")
	ErrInvalidRole              = errors.New("invalid role")
	ErrPlanNotFound             = errors.New("plan not found")
	ErrSubscriptionNotFound     = errors.New("subscription not found")
	ErrPermissionNotFound       = errors.New("permission not found")
	ErrDuplicatePermissionKey   = errors.New("permission key already exists")
	ErrClientNotFound           = errors.New("client not found")
	ErrItemNotFound             = errors.New("item not found")
	ErrCategoryNotFound         = errors.New("category not found")
	ErrDuplicateCategoryName    = errors.New("category name already exists")
)

// ErrPaymentRequired is the base of every gate denial. Callers test with
// errors.Is and extract details with errors.As on *GateError.
var ErrPaymentRequired = errors.New("payment required")

// GateError carries the denial details the API surfaces to clients:
// which organization was gated, and optionally the module, feature key
// and limit that triggered the denial.
type GateError struct {
	Message         string
	RequiresUpgrade bool
	OrganizationID  string
	Module          string
	FeatureKey      string
	Limit           *int
}

func (e *GateError) Error() string { return e.Message }

func (e *GateError) Unwrap() error { return ErrPaymentRequired }

// NewSubscriptionRequiredError reports that the organization has no
// active subscription.
func NewSubscriptionRequiredError(orgID string) *GateError {
	return &GateError{
		Message:         "An active subscription is required",
		RequiresUpgrade: true,
		OrganizationID:  orgID,
	}
}

// NewModuleNotAvailableError reports that the current plan does not
// include the named module.
func NewModuleNotAvailableError(orgID, moduleSlug string) *GateError {
	return &GateError{
		Message:         fmt.Sprintf("Your plan does not include the %s module", moduleSlug),
		RequiresUpgrade: true,
		OrganizationID:  orgID,
		Module:          moduleSlug,
	}
}

// NewMemberLimitReachedError reports that admitting another member would
// exceed the plan's member limit. A nil limit means the organization has
// no plan at all.
func NewMemberLimitReachedError(orgID string, limit *int) *GateError {
	return &GateError{
		Message:         "Member limit reached for your plan",
		RequiresUpgrade: true,
		OrganizationID:  orgID,
		Limit:           limit,
	}
}

// NewFeatureLimitReachedError reports that usage of featureKey has
// reached the plan's limit.
func NewFeatureLimitReachedError(orgID, featureKey string, limit *int) *GateError {
	return &GateError{
		Message:         "Plan limit reached for this feature",
		RequiresUpgrade: true,
		OrganizationID:  orgID,
		FeatureKey:      featureKey,
		Limit:           limit,
	}
}
