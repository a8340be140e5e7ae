// internal/handler/member.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	user := middleware.UserFromContext(r.Context())
	output, err := h.memberService.List(r.Context(), user, org)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":           true,
		"members":      output.Members,
		"active_count": output.ActiveCount,
		"member_limit": output.MemberLimit,
	})
}

func (h *MemberHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	var input service.AddMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	membership, err := h.memberService.Add(r.Context(), user, org, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "membership": membership})
}

func (h *MemberHandler) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "user"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Member not found")
		return
	}

	var input service.UpdateMemberRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	actor := middleware.UserFromContext(r.Context())
	membership, err := h.memberService.UpdateRole(r.Context(), actor, org, userID, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "membership": membership})
}

func (h *MemberHandler) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	org, ok := requireOrganization(w, r)
	if !ok {
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "user"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Member not found")
		return
	}

	actor := middleware.UserFromContext(r.Context())
	if err := h.memberService.Remove(r.Context(), actor, org, userID); err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
