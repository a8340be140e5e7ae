// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/tenant"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleDomainError maps service errors onto the HTTP error taxonomy.
// Gate denials respond 402 with the upgrade payload; anything unmapped is
// logged and collapses to a 500.
func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, fieldErr.Error())
		}
		respondWithJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Validation failed",
			Details: &details,
		})
		return
	}

	var gateErr *domain.GateError
	if errors.As(err, &gateErr) {
		payload := map[string]interface{}{
			"error":            gateErr.Message,
			"requires_upgrade": gateErr.RequiresUpgrade,
			"organization_id":  gateErr.OrganizationID,
		}
		if gateErr.Module != "" {
			payload["module"] = gateErr.Module
		}
		if gateErr.FeatureKey != "" {
			payload["feature"] = gateErr.FeatureKey
		}
		if gateErr.Limit != nil {
			payload["limit"] = *gateErr.Limit
		}
		respondWithJSON(w, http.StatusPaymentRequired, payload)
		return
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrOrganizationAccessDenied),
		errors.Is(err, domain.ErrActionNotAllowed),
		errors.Is(err, domain.ErrCannotRemoveSelf):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrMembershipNotFound),
		errors.Is(err, domain.ErrPlanNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound),
		errors.Is(err, domain.ErrPermissionNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrSlugAlreadyExists),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrDuplicatePermissionKey),
		errors.Is(err, domain.ErrDuplicateCategoryName):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidRole):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNoOrganizationCandidate):
		respondWithError(w, http.StatusBadRequest, "Organization not specified")
	default:
		slog.ErrorContext(r.Context(), "Unhandled service error",
			"error", err, "requestID", middleware.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requireOrganization pulls the bound organization out of the request
// context, responding 400 when resolution found none.
func requireOrganization(w http.ResponseWriter, r *http.Request) (*model.Organization, bool) {
	org := tenant.FromContext(r.Context())
	if org == nil {
		respondWithError(w, http.StatusBadRequest, "Organization not specified")
		return nil, false
	}
	return org, true
}
