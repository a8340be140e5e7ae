// internal/handler/plan.go
package handler

import (
	"net/http"

	"github.com/bitvara/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.List(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "plans": plans})
}

func (h *PlanHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	plan, err := h.planService.GetBySlug(r.Context(), chi.URLParam(r, "plan"))
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "plan": plan})
}
