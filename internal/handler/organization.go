// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/bitvara/backoffice/internal/tenant"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

func (h *OrganizationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	org, err := h.orgService.Create(r.Context(), user, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "organization": org})
}

func (h *OrganizationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	orgs, err := h.orgService.ListForUser(r.Context(), user)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organizations": orgs})
}

func (h *OrganizationHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrganizationID(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	org, err := h.orgService.Get(r.Context(), user, id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organization": org})
}

func (h *OrganizationHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrganizationID(w, r)
	if !ok {
		return
	}

	var input service.UpdateOrganizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	org, err := h.orgService.Update(r.Context(), user, id, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organization": org})
}

func (h *OrganizationHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrganizationID(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	if err := h.orgService.Delete(r.Context(), user, id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// CurrentHandler reports the organization bound to this request, if any.
func (h *OrganizationHandler) CurrentHandler(w http.ResponseWriter, r *http.Request) {
	org := tenant.FromContext(r.Context())
	if org == nil {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organization": nil})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organization": org})
}

// SelectHandler remembers the caller's working organization in a cookie
// after verifying they can view it.
func (h *OrganizationHandler) SelectHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrganizationID(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	org, err := h.orgService.Get(r.Context(), user, id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	setOrganizationCookie(w, org.ID)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organization": org})
}

// SelectCurrentHandler is the body-based form of SelectHandler for clients
// that don't address organizations by route.
func (h *OrganizationHandler) SelectCurrentHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		OrganizationID string `json:"organization_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	id, err := uuid.Parse(input.OrganizationID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Organization not found")
		return
	}

	user := middleware.UserFromContext(r.Context())
	org, err := h.orgService.Get(r.Context(), user, id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	setOrganizationCookie(w, org.ID)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "organization": org})
}

func setOrganizationCookie(w http.ResponseWriter, orgID uuid.UUID) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.OrganizationCookie,
		Value:    orgID.String(),
		Path:     "/",
		Expires:  time.Now().AddDate(0, 1, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func parseOrganizationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "organization"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Organization not found")
		return uuid.Nil, false
	}
	return id, true
}
