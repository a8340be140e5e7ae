// internal/handler/item.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bitvara/backoffice/internal/middleware"
	"github.com/bitvara/backoffice/internal/repository"
	"github.com/bitvara/backoffice/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ItemHandler struct {
	inventoryService *service.InventoryService
}

func NewItemHandler(inventoryService *service.InventoryService) *ItemHandler {
	return &ItemHandler{inventoryService: inventoryService}
}

func (h *ItemHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	filter := repository.ItemFilter{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		ItemType: r.URL.Query().Get("item_type"),
		Offset:   offset,
		Limit:    limit,
	}

	output, err := h.inventoryService.ListItems(r.Context(), filter)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"items": output.Items,
		"total": output.Total,
	})
}

func (h *ItemHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetItem(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "item": item})
}

func (h *ItemHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input service.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.inventoryService.CreateItem(r.Context(), input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "item": item})
}

func (h *ItemHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var input service.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.inventoryService.UpdateItem(r.Context(), id, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "item": item})
}

func (h *ItemHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	if err := h.inventoryService.DeleteItem(r.Context(), id); err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *ItemHandler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.inventoryService.ListCategories(r.Context())
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "categories": categories})
}

func (h *ItemHandler) RecordMovementHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	var input service.StockMovementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	movement, err := h.inventoryService.RecordMovement(r.Context(), user, id, input)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"ok": true, "movement": movement})
}

func (h *ItemHandler) ListMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	movements, err := h.inventoryService.ListMovements(r.Context(), id)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "movements": movements})
}

func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "item"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Item not found")
		return uuid.Nil, false
	}
	return id, true
}
