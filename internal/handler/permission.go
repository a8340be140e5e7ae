// internal/handler/permission.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/service"
)

type PermissionHandler struct {
	permissionService *service.PermissionService
}

func NewPermissionHandler(permissionService *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

func (h *PermissionHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	permissions, err := h.permissionService.List(r.Context(), user, org)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "permissions": permissions})
}

func (h *PermissionHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	var input service.CreatePermissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	permission, err := h.permissionService.Create(r.Context(), user, org, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "permission": permission})
}
