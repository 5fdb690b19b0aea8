package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lakestash/lakestash/internal/model"
	"github.com/lakestash/lakestash/internal/store"
)

// InventoryHandler handles item CRUD endpoints.
type InventoryHandler struct {
	Store store.Store
}

// itemPayload is the request body for creates and updates. Numeric fields are
// kept raw so that a missing key, a JSON number, and a numeric string can be
// told apart; clients are loose about which they send.
type itemPayload struct {
	Name        *string         `json:"name"`
	Quantity    json.RawMessage `json:"quantity"`
	MaxQuantity json.RawMessage `json:"maxQuantity"`
	Unit        *string         `json:"unit"`
	Category    *string         `json:"category"`
	Status      *string         `json:"status"`
	Notes       *string         `json:"notes"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetIdentity(r.Context())

	items, err := h.Store.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("listing items", "user", user.ID, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/inventory.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := GetIdentity(r.Context())

	var req itemPayload
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if name == "" || req.Quantity == nil {
		jsonError(w, http.StatusBadRequest, "name and quantity are required")
		return
	}

	now := time.Now().UTC()
	item := &model.Item{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Name:        name,
		Quantity:    coerceNumber(req.Quantity),
		MaxQuantity: coerceNumber(req.MaxQuantity),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	item.ApplyDefaults()

	if err := h.Store.Create(r.Context(), item); err != nil {
		slog.Error("creating item", "user", user.ID, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/inventory/{id}. The patch is shallow-merged onto
// the existing document and the result replaces it wholesale; id and userId
// always keep their stored values.
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := GetIdentity(r.Context())
	id := r.PathValue("id")

	var req itemPayload
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.Get(r.Context(), user.ID, id)
	if err != nil {
		slog.Error("getting item", "user", user.ID, "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Quantity != nil {
		item.Quantity = coerceNumber(req.Quantity)
	}
	if req.MaxQuantity != nil {
		item.MaxQuantity = coerceNumber(req.MaxQuantity)
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	item.UpdatedAt = time.Now().UTC()

	if err := h.Store.Replace(r.Context(), item); err != nil {
		if err == store.ErrNotFound {
			jsonError(w, http.StatusNotFound, "item not found")
			return
		}
		slog.Error("replacing item", "user", user.ID, "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := GetIdentity(r.Context())
	id := r.PathValue("id")

	if err := h.Store.Delete(r.Context(), user.ID, id); err != nil {
		if err == store.ErrNotFound {
			jsonError(w, http.StatusNotFound, "item not found")
			return
		}
		slog.Error("deleting item", "user", user.ID, "item", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// coerceNumber turns a raw JSON value into a float: numbers pass through,
// numeric strings are parsed, anything else (including null) becomes 0.
func coerceNumber(raw json.RawMessage) float64 {
	if raw == nil {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}
