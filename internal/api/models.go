package api

import (
	"github.com/example/demo-api/internal/api/shared"
	"github.com/example/demo-api/internal/domain"
	"github.com/example/demo-api/internal/store"
)

// Request/response models for the users and orders resources. Each
// resource has three shapes: a create request (all required fields, no
// id), an update request (every field optional with patch semantics), and
// a response carrying the server-assigned id.

// CreateUserRequest defines the payload for creating a user. The same
// shape is used by the full-replace (PUT) endpoint.
type CreateUserRequest struct {
	Name  string `json:"name"          validate:"required,min=2,max=50"`
	Email string `json:"email"         validate:"required,email"`
	Age   int    `json:"age,omitempty" validate:"omitempty,gt=0,lt=120"`
}

// UpdateUserRequest defines the payload for partially updating a user.
// Absent fields are left unchanged; explicit nulls are rejected.
type UpdateUserRequest struct {
	Name  shared.Optional[string] `json:"name"`
	Email shared.Optional[string] `json:"email"`
	Age   shared.Optional[int]    `json:"age"`
}

// Validate checks every present field and reports all offending fields at
// once. Invoked by shared.ValidateRequest in preference to struct tags,
// which cannot see through the tri-state wrapper.
func (r *UpdateUserRequest) Validate() error {
	var fields shared.FieldErrorList

	if r.Name.Present() {
		if v, ok := r.Name.Get(); !ok {
			fields = append(fields, shared.FieldError{Field: "name", Message: "must not be null"})
		} else if len(v) < 2 || len(v) > 50 {
			fields = append(fields, shared.FieldError{Field: "name", Message: "must be between 2 and 50 characters"})
		}
	}

	if r.Email.Present() {
		if v, ok := r.Email.Get(); !ok {
			fields = append(fields, shared.FieldError{Field: "email", Message: "must not be null"})
		} else if shared.Validate.Var(v, "required,email") != nil {
			fields = append(fields, shared.FieldError{Field: "email", Message: "invalid email format"})
		}
	}

	if r.Age.Present() {
		if v, ok := r.Age.Get(); !ok {
			fields = append(fields, shared.FieldError{Field: "age", Message: "must not be null"})
		} else if v < 1 || v > 119 {
			fields = append(fields, shared.FieldError{Field: "age", Message: "must be between 1 and 119"})
		}
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Patch converts the request into the store's patch form.
func (r *UpdateUserRequest) Patch() store.UserPatch {
	return store.UserPatch{
		Name:  r.Name.Ptr(),
		Email: r.Email.Ptr(),
		Age:   r.Age.Ptr(),
	}
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age,omitempty"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Age:   user.Age,
	}
}

// CreateOrderRequest defines the payload for creating an order. The same
// shape is used by the full-replace (PUT) endpoint.
type CreateOrderRequest struct {
	UserID   int     `json:"user_id"         validate:"required,gt=0"`
	Item     string  `json:"item"            validate:"required,min=1,max=100"`
	Quantity int     `json:"quantity"        validate:"required,gt=0"`
	Total    float64 `json:"total,omitempty" validate:"omitempty,gt=0"`
}

// UpdateOrderRequest defines the payload for partially updating an order.
// The owning user cannot be changed after creation, so user_id is absent.
type UpdateOrderRequest struct {
	Item     shared.Optional[string]  `json:"item"`
	Quantity shared.Optional[int]     `json:"quantity"`
	Total    shared.Optional[float64] `json:"total"`
}

// Validate checks every present field and reports all offending fields at once.
func (r *UpdateOrderRequest) Validate() error {
	var fields shared.FieldErrorList

	if r.Item.Present() {
		if v, ok := r.Item.Get(); !ok {
			fields = append(fields, shared.FieldError{Field: "item", Message: "must not be null"})
		} else if len(v) < 1 || len(v) > 100 {
			fields = append(fields, shared.FieldError{Field: "item", Message: "must be between 1 and 100 characters"})
		}
	}

	if r.Quantity.Present() {
		if v, ok := r.Quantity.Get(); !ok {
			fields = append(fields, shared.FieldError{Field: "quantity", Message: "must not be null"})
		} else if v <= 0 {
			fields = append(fields, shared.FieldError{Field: "quantity", Message: "must be greater than 0"})
		}
	}

	if r.Total.Present() {
		if v, ok := r.Total.Get(); !ok {
			fields = append(fields, shared.FieldError{Field: "total", Message: "must not be null"})
		} else if v <= 0 {
			fields = append(fields, shared.FieldError{Field: "total", Message: "must be greater than 0"})
		}
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Patch converts the request into the store's patch form.
func (r *UpdateOrderRequest) Patch() store.OrderPatch {
	return store.OrderPatch{
		Item:     r.Item.Ptr(),
		Quantity: r.Quantity.Ptr(),
		Total:    r.Total.Ptr(),
	}
}

// OrderResponse represents the response data for an order.
type OrderResponse struct {
	ID       int     `json:"id"`
	UserID   int     `json:"user_id"`
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total,omitempty"`
}

// orderToResponse converts a domain.Order to an OrderResponse.
func orderToResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:       order.ID,
		UserID:   order.UserID,
		Item:     order.Item,
		Quantity: order.Quantity,
		Total:    order.Total,
	}
}
