// internal/handler/client.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientService *service.ClientService
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	user := middleware.UserFromContext(r.Context())
	output, err := h.clientService.List(r.Context(), user, org, offset, limit)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"clients": output.Clients,
		"total":   output.Total,
	})
}

func (h *ClientHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	id, ok := parseClientID(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	client, err := h.clientService.Get(r.Context(), user, org, id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "client": client})
}

func (h *ClientHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	var input service.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	client, err := h.clientService.Create(r.Context(), user, org, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "client": client})
}

func (h *ClientHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	id, ok := parseClientID(w, r)
	if !ok {
		return
	}

	var input service.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	client, err := h.clientService.Update(r.Context(), user, org, id, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "client": client})
}

func (h *ClientHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	id, ok := parseClientID(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	if err := h.clientService.Delete(r.Context(), user, org, id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func parseClientID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "client"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Client not found")
		return uuid.Nil, false
	}
	return id, true
}
