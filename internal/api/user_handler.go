package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/demo-api/internal/api/shared"
	"github.com/example/demo-api/internal/domain"
	"github.com/example/demo-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// contextKey scopes values this package stores in request contexts.
type contextKey string

const (
	userContextKey  contextKey = "user"
	orderContextKey contextKey = "order"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users  store.UserStore
	limits shared.PaginationLimits
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, limits shared.PaginationLimits, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:  users,
		limits: limits,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// Context is a get-or-404 middleware: it loads the user identified by the
// userID path parameter into the request context, or short-circuits with
// 404 before the handler body runs. Handlers registered below it never see
// a missing user.
func (h *UserHandler) Context(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "userID"))
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID format")
			return
		}

		user, err := h.users.GetByID(r.Context(), id)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the user loaded by Context. It is only called
// from handlers mounted below that middleware, so the value is always set.
func userFromContext(ctx context.Context) *domain.User {
	return ctx.Value(userContextKey).(*domain.User)
}

// Create handles POST /users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	user := &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("user created", slog.Int("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// List handles GET /users requests with offset/limit pagination.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, invalid := shared.ParsePagination(r, h.limits)
	if invalid != nil {
		shared.RespondWithValidationError(w, r, invalid)
		return
	}

	users, err := h.users.List(r.Context(), page.Offset, page.Limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userToResponse(user))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET /users/{userID} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Replace handles PUT /users/{userID} requests. Every field is replaced
// with the request body's values; the id is preserved.
func (h *UserHandler) Replace(w http.ResponseWriter, r *http.Request) {
	current := userFromContext(r.Context())

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	user := &domain.User{
		ID:    current.ID,
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}
	if err := h.users.Replace(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("user replaced", slog.Int("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Update handles PATCH /users/{userID} requests. Only fields present in
// the body change; an empty body (or empty object) changes nothing.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	current := userFromContext(r.Context())

	var req UpdateUserRequest
	if err := shared.DecodeJSONAllowEmpty(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithValidationError(w, r, shared.FieldErrors(err))
		return
	}

	updated, err := h.users.Update(r.Context(), current.ID, req.Patch())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("user updated", slog.Int("user_id", updated.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// Delete handles DELETE /users/{userID} requests. Orders referencing the
// deleted user are intentionally left in place.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	if err := h.users.Delete(r.Context(), user.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("user deleted", slog.Int("user_id", user.ID))
	w.WriteHeader(http.StatusNoContent)
}
