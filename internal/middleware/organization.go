// internal/middleware/organization.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/bitvara/backoffice/internal/authz"
	"github.com/bitvara/backoffice/internal/domain"
	"github.com/bitvara/backoffice/internal/tenant"
	"github.com/go-chi/chi/v5"
)

const (
	// OrganizationHeader carries the tenant id on API calls.
	OrganizationHeader = "X-Organization-Id"
	// OrganizationQueryParam is the fallback for clients that can't set headers.
	OrganizationQueryParam = "organization_id"
	// OrganizationRouteParam is the chi URL parameter on nested routes.
	OrganizationRouteParam = "organization"
	// OrganizationCookie remembers the last selected organization.
	OrganizationCookie = "current_organization_id"
)

func candidatesFromRequest(r *http.Request) authz.Candidates {
	c := authz.Candidates{
		Header: r.Header.Get(OrganizationHeader),
		Query:  r.URL.Query().Get(OrganizationQueryParam),
		Route:  chi.URLParam(r, OrganizationRouteParam),
	}
	if cookie, err := r.Cookie(OrganizationCookie); err == nil {
		c.Session = cookie.Value
	}
	return c
}

// OrganizationContext binds the requested organization into the request
// context when it can be resolved. Resolution failures are silent here;
// handlers that need an organization respond 400 when none is bound.
func OrganizationContext(resolver *authz.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if org := resolver.Bind(r.Context(), user, candidatesFromRequest(r)); org != nil {
				r = r.WithContext(tenant.WithOrganization(r.Context(), org))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireModule resolves the organization strictly and rejects the request
// unless the organization's plan includes the module. Each failure mode
// gets its own status so clients can distinguish a missing tenant from a
// plan that needs an upgrade.
func RequireModule(resolver *authz.Resolver, gate *authz.Gate, moduleSlug string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())

			org, err := resolver.Resolve(r.Context(), user, candidatesFromRequest(r))
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUnauthenticated):
					respondWithError(w, http.StatusUnauthorized, "Unauthenticated")
				case errors.Is(err, domain.ErrNoOrganizationCandidate):
					respondWithError(w, http.StatusBadRequest, "Organization not specified")
				case errors.Is(err, domain.ErrOrganizationNotFound):
					respondWithError(w, http.StatusNotFound, "Organization not found")
				case errors.Is(err, domain.ErrOrganizationAccessDenied):
					respondWithError(w, http.StatusForbidden, "You do not have access to this organization")
				default:
					respondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			if err := gate.CheckSubscription(r.Context(), org); err != nil {
				writeGateError(w, err)
				return
			}
			if err := gate.CheckModule(r.Context(), org, moduleSlug); err != nil {
				writeGateError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(tenant.WithOrganization(r.Context(), org)))
		})
	}
}

func writeGateError(w http.ResponseWriter, err error) {
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
		respondWithJSON(w, http.StatusPaymentRequired, payload)
		return
	}
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}
