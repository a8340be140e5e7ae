// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/model"
	"github.com/bitvara/backoffice/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	userService *service.UserService
	orgService  *service.OrganizationService
}

func NewAuthHandler(userService *service.UserService, orgService *service.OrganizationService) *AuthHandler {
	return &AuthHandler{userService: userService, orgService: orgService}
}

type SignupResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

type LoginResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	orgs, err := h.orgService.ListForUser(r.Context(), user)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":            true,
		"user":          user,
		"organizations": orgs,
	})
}
