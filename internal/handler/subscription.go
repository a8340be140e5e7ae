// internal/handler/subscription.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/service"
)

type SubscriptionHandler struct {
	subService *service.SubscriptionService
}

func NewSubscriptionHandler(subService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subService: subService}
}

func (h *SubscriptionHandler) CurrentHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	sub, err := h.subService.Current(r.Context(), user, org)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "subscription": sub})
}

func (h *SubscriptionHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	subs, err := h.subService.History(r.Context(), user, org)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "subscriptions": subs})
}

func (h *SubscriptionHandler) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	var input service.SubscribeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	sub, err := h.subService.Subscribe(r.Context(), user, org, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "subscription": sub})
}

func (h *SubscriptionHandler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	sub, err := h.subService.Cancel(r.Context(), user, org)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "subscription": sub})
}

func (h *SubscriptionHandler) RenewHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	sub, err := h.subService.Renew(r.Context(), user, org)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "subscription": sub})
}
