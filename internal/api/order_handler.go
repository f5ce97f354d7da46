package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/demo-api/internal/api/shared"
	"github.com/example/demo-api/internal/domain"
	"github.com/example/demo-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// OrderHandler handles order-related HTTP requests. It holds the user
// store as well, because creating or replacing an order must verify that
// the referenced user exists at that moment. The reference is never
// re-validated afterwards.
type OrderHandler struct {
	orders store.OrderStore
	users  store.UserStore
	limits shared.PaginationLimits
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(
	orders store.OrderStore,
	users store.UserStore,
	limits shared.PaginationLimits,
	logger *slog.Logger,
) *OrderHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OrderHandler")
	}

	return &OrderHandler{
		orders: orders,
		users:  users,
		limits: limits,
		logger: logger.With(slog.String("component", "order_handler")),
	}
}

// Context is a get-or-404 middleware: it loads the order identified by the
// orderID path parameter into the request context, or short-circuits with
// 404 before the handler body runs.
func (h *OrderHandler) Context(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "orderID"))
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid order ID format")
			return
		}

		order, err := h.orders.GetByID(r.Context(), id)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}

		ctx := context.WithValue(r.Context(), orderContextKey, order)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// orderFromContext returns the order loaded by Context.
func orderFromContext(ctx context.Context) *domain.Order {
	return ctx.Value(orderContextKey).(*domain.Order)
}

// verifyUserExists checks the cross-resource invariant for order creation
// and replacement. Returns false after writing the error response when the
// referenced user does not exist.
func (h *OrderHandler) verifyUserExists(w http.ResponseWriter, r *http.Request, userID int) bool {
	_, err := h.users.GetByID(r.Context(), userID)
	if err == nil {
		return true
	}

	if errors.Is(err, store.ErrUserNotFound) {
		h.logger.Debug("order references unknown user", slog.Int("user_id", userID))
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return false
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
	return false
}

// Create handles POST /orders requests. The referenced user must exist.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if !h.verifyUserExists(w, r, req.UserID) {
		return
	}

	order := &domain.Order{
		UserID:   req.UserID,
		Item:     req.Item,
		Quantity: req.Quantity,
		Total:    req.Total,
	}
	if err := h.orders.Create(r.Context(), order); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("order created",
		slog.Int("order_id", order.ID),
		slog.Int("user_id", order.UserID))
	shared.RespondWithJSON(w, r, http.StatusCreated, orderToResponse(order))
}

// List handles GET /orders requests with offset/limit pagination.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, invalid := shared.ParsePagination(r, h.limits)
	if invalid != nil {
		shared.RespondWithValidationError(w, r, invalid)
		return
	}

	orders, err := h.orders.List(r.Context(), page.Offset, page.Limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, orderToResponse(order))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// ListByUser handles GET /orders/user/{userID} requests, returning every
// order placed by the given user. Unknown users yield 404.
func (h *OrderHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	if !h.verifyUserExists(w, r, userID) {
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, orderToResponse(order))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET /orders/{orderID} requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order := orderFromContext(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// Replace handles PUT /orders/{orderID} requests. Every field is replaced
// with the request body's values, and the referenced user must exist.
func (h *OrderHandler) Replace(w http.ResponseWriter, r *http.Request) {
	current := orderFromContext(r.Context())

	var req CreateOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	if !h.verifyUserExists(w, r, req.UserID) {
		return
	}

	order := &domain.Order{
		ID:       current.ID,
		UserID:   req.UserID,
		Item:     req.Item,
		Quantity: req.Quantity,
		Total:    req.Total,
	}
	if err := h.orders.Replace(r.Context(), order); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("order replaced", slog.Int("order_id", order.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// Update handles PATCH /orders/{orderID} requests. Only fields present in
// the body change; an empty body (or empty object) changes nothing.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	current := orderFromContext(r.Context())

	var req UpdateOrderRequest
	if err := shared.DecodeJSONAllowEmpty(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	updated, err := h.orders.Update(r.Context(), current.ID, req.Patch())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("order updated", slog.Int("order_id", updated.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(updated))
}

// Delete handles DELETE /orders/{orderID} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	order := orderFromContext(r.Context())

	if err := h.orders.Delete(r.Context(), order.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("order deleted", slog.Int("order_id", order.ID))
	w.WriteHeader(http.StatusNoContent)
}
