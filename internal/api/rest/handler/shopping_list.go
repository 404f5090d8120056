package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/model"
	"github.com/shooping/list-server/internal/service"
)

// ListService is the shopping-list facade consumed by the handler.
type ListService interface {
	CreateList(ctx context.Context, ownerID uuid.UUID, title, description string) (model.ShoppingList, error)
	GetList(ctx context.Context, ownerID, listID uuid.UUID) (model.ShoppingList, error)
	ListsForOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ShoppingList, error)
	UpdateList(ctx context.Context, ownerID, listID uuid.UUID, title, description *string) (model.ShoppingList, error)
	DeleteList(ctx context.Context, ownerID, listID uuid.UUID) error
	AddItem(ctx context.Context, ownerID, listID uuid.UUID, name string, quantity float64, unit string, unitPrice *float64) (model.ShoppingList, error)
	UpdateItem(ctx context.Context, ownerID, listID, itemID uuid.UUID, patch service.ItemUpdate) (model.ShoppingList, error)
	RemoveItem(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error)
	MarkItemPurchased(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error)
	MarkItemPending(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error)
	ClearPurchased(ctx context.Context, ownerID, listID uuid.UUID) (model.ShoppingList, error)
}

// ShoppingList exposes the list CRUD endpoints.
type ShoppingList struct {
	service        ListService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewShoppingList creates the shopping-list handler.
func NewShoppingList(service ListService, contextManager model.ContextManager, logger *logger.Logger) *ShoppingList {
	return &ShoppingList{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateListRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type addItemRequest struct {
	Name      string   `json:"name"`
	Quantity  float64  `json:"quantity"`
	Unit      string   `json:"unit"`
	UnitPrice *float64 `json:"unit_price"`
}

type updateItemRequest struct {
	Name       *string  `json:"name"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	UnitPrice  *float64 `json:"unit_price"`
	ClearPrice bool     `json:"clear_price"`
}

type itemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit,omitempty"`
	UnitPrice *float64  `json:"unit_price,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listResponse struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Items        []itemResponse `json:"items"`
	PendingCount int            `json:"pending_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func toListResponse(list model.ShoppingList) listResponse {
	items := make([]itemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, itemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			Status:    string(item.Status),
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}

	return listResponse{
		ID:           list.ID,
		Title:        list.Title,
		Description:  list.Description,
		Items:        items,
		PendingCount: list.PendingCount(),
		CreatedAt:    list.CreatedAt,
		UpdatedAt:    list.UpdatedAt,
	}
}

// Create handles POST /api/v1/lists.
func (h *ShoppingList) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req createListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	list, err := h.service.CreateList(r.Context(), ownerID, req.Title, req.Description)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(list))
}

// List handles GET /api/v1/lists.
func (h *ShoppingList) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}

	lists, err := h.service.ListsForOwner(r.Context(), ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	res := make([]listResponse, 0, len(lists))
	for _, list := range lists {
		res = append(res, toListResponse(list))
	}
	writeJSON(w, http.StatusOK, res)
}

// Get handles GET /api/v1/lists/{listID}.
func (h *ShoppingList) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}

	list, err := h.service.GetList(r.Context(), ownerID, listID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// Update handles PATCH /api/v1/lists/{listID}.
func (h *ShoppingList) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}

	var req updateListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	list, err := h.service.UpdateList(r.Context(), ownerID, listID, req.Title, req.Description)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// Delete handles DELETE /api/v1/lists/{listID}.
func (h *ShoppingList) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}

	if err := h.service.DeleteList(r.Context(), ownerID, listID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/v1/lists/{listID}/items.
func (h *ShoppingList) AddItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}

	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	list, err := h.service.AddItem(r.Context(), ownerID, listID, req.Name, req.Quantity, req.Unit, req.UnitPrice)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(list))
}

// UpdateItem handles PATCH /api/v1/lists/{listID}/items/{itemID}.
func (h *ShoppingList) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	patch := service.ItemUpdate{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		UnitPrice:  req.UnitPrice,
		ClearPrice: req.ClearPrice,
	}

	list, err := h.service.UpdateItem(r.Context(), ownerID, listID, itemID, patch)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// RemoveItem handles DELETE /api/v1/lists/{listID}/items/{itemID}.
func (h *ShoppingList) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	list, err := h.service.RemoveItem(r.Context(), ownerID, listID, itemID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// Purchase handles POST /api/v1/lists/{listID}/items/{itemID}/purchase.
func (h *ShoppingList) Purchase(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.service.MarkItemPurchased)
}

// Unpurchase handles DELETE /api/v1/lists/{listID}/items/{itemID}/purchase.
func (h *ShoppingList) Unpurchase(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.service.MarkItemPending)
}

// ClearPurchased handles DELETE /api/v1/lists/{listID}/items/purchased.
func (h *ShoppingList) ClearPurchased(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}

	list, err := h.service.ClearPurchased(r.Context(), ownerID, listID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

func (h *ShoppingList) setStatus(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, ownerID, listID, itemID uuid.UUID) (model.ShoppingList, error)) {
	ownerID, ok := h.owner(w, r)
	if !ok {
		return
	}
	listID, ok := pathID(w, r, "listID")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	list, err := fn(r.Context(), ownerID, listID, itemID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

func (h *ShoppingList) owner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return uuid.Nil, false
	}
	return ownerID, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
