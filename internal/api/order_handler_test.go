package api_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/example/demo-api/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, r http.Handler, userID int, item string, quantity int) api.OrderResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"user_id":  userID,
		"item":     item,
		"quantity": quantity,
	})
	require.NoError(t, err)

	rec := doJSON(t, r, http.MethodPost, "/orders", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[api.OrderResponse](t, rec)
}

func TestOrderEndpoints_CreateAndGet(t *testing.T) {
	router, _, _ := newTestRouter(t)
	user := createTestUser(t, router, "Alice Rahman", "alice@example.com")

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"user_id": `+strconv.Itoa(user.ID)+`, "item": "Widget", "quantity": 2, "total": 19.98}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[api.OrderResponse](t, rec)
	assert.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, "Widget", created.Item)
	assert.Equal(t, 2, created.Quantity)
	assert.InDelta(t, 19.98, created.Total, 0.001)

	rec = doJSON(t, router, http.MethodGet, "/orders/"+strconv.Itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[api.OrderResponse](t, rec))
}

func TestOrderEndpoints_CreateRequiresExistingUser(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"user_id": 99999, "item": "Widget", "quantity": 1}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "User not found", body.Error)

	rec = doJSON(t, router, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]api.OrderResponse](t, rec), "rejected orders must not be stored")
}

func TestOrderEndpoints_CreateValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)
	user := createTestUser(t, router, "Alice Rahman", "alice@example.com")
	userID := strconv.Itoa(user.ID)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing_user_id",
			body:      `{"item": "Widget", "quantity": 1}`,
			wantField: "user_id",
		},
		{
			name:      "missing_item",
			body:      `{"user_id": ` + userID + `, "quantity": 1}`,
			wantField: "item",
		},
		{
			name:      "zero_quantity",
			body:      `{"user_id": ` + userID + `, "item": "Widget", "quantity": 0}`,
			wantField: "quantity",
		},
		{
			name:      "negative_total",
			body:      `{"user_id": ` + userID + `, "item": "Widget", "quantity": 1, "total": -5}`,
			wantField: "total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/orders", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			body := decodeBody[errorBody](t, rec)
			require.NotEmpty(t, body.Fields)
			assert.Equal(t, tt.wantField, body.Fields[0].Field)
		})
	}
}

func TestOrderEndpoints_List(t *testing.T) {
	router, _, _ := newTestRouter(t)
	user := createTestUser(t, router, "Alice Rahman", "alice@example.com")

	var created []api.OrderResponse
	for i := 1; i <= 4; i++ {
		created = append(created, createTestOrder(t, router, user.ID, "Item "+strconv.Itoa(i), i))
	}

	t.Run("full_listing_in_creation_order", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decodeBody[[]api.OrderResponse](t, rec))
	})

	t.Run("window", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/orders?offset=1&limit=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		orders := decodeBody[[]api.OrderResponse](t, rec)
		require.Len(t, orders, 2)
		assert.Equal(t, created[1], orders[0])
		assert.Equal(t, created[2], orders[1])
	})
}

func TestOrderEndpoints_ListByUser(t *testing.T) {
	router, _, _ := newTestRouter(t)
	alice := createTestUser(t, router, "Alice Rahman", "alice@example.com")
	bob := createTestUser(t, router, "Bob Okafor", "bob@example.com")

	createTestOrder(t, router, alice.ID, "Widget", 1)
	createTestOrder(t, router, bob.ID, "Gadget", 2)
	createTestOrder(t, router, alice.ID, "Gizmo", 3)

	t.Run("returns_only_that_users_orders", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/orders/user/"+strconv.Itoa(alice.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)

		orders := decodeBody[[]api.OrderResponse](t, rec)
		require.Len(t, orders, 2)
		assert.Equal(t, "Widget", orders[0].Item)
		assert.Equal(t, "Gizmo", orders[1].Item)
	})

	t.Run("user_without_orders", func(t *testing.T) {
		carol := createTestUser(t, router, "Carol Diaz", "carol@example.com")

		rec := doJSON(t, router, http.MethodGet, "/orders/user/"+strconv.Itoa(carol.ID), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("unknown_user", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/orders/user/99999", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decodeBody[errorBody](t, rec)
		assert.Equal(t, "User not found", body.Error)
	})

	t.Run("non_numeric_user_id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/orders/user/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderEndpoints_Replace(t *testing.T) {
	router, _, _ := newTestRouter(t)
	alice := createTestUser(t, router, "Alice Rahman", "alice@example.com")
	bob := createTestUser(t, router, "Bob Okafor", "bob@example.com")
	created := createTestOrder(t, router, alice.ID, "Widget", 2)
	path := "/orders/" + strconv.Itoa(created.ID)

	t.Run("replaces_all_fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, path,
			`{"user_id": `+strconv.Itoa(bob.ID)+`, "item": "Gadget", "quantity": 5, "total": 49.95}`)
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeBody[api.OrderResponse](t, rec)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, bob.ID, updated.UserID)
		assert.Equal(t, "Gadget", updated.Item)
		assert.Equal(t, 5, updated.Quantity)
	})

	t.Run("new_user_must_exist", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, path,
			`{"user_id": 99999, "item": "Gadget", "quantity": 5}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown_order", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/orders/99999",
			`{"user_id": `+strconv.Itoa(alice.ID)+`, "item": "Widget", "quantity": 1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderEndpoints_Update(t *testing.T) {
	router, _, _ := newTestRouter(t)
	user := createTestUser(t, router, "Alice Rahman", "alice@example.com")

	seed := func(t *testing.T) (api.OrderResponse, string) {
		order := createTestOrder(t, router, user.ID, "Widget", 2)
		return order, "/orders/" + strconv.Itoa(order.ID)
	}

	t.Run("empty_object_changes_nothing", func(t *testing.T) {
		created, path := seed(t)

		rec := doJSON(t, router, http.MethodPatch, path, `{}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decodeBody[api.OrderResponse](t, rec))
	})

	t.Run("single_field_leaves_the_rest", func(t *testing.T) {
		created, path := seed(t)

		rec := doJSON(t, router, http.MethodPatch, path, `{"quantity": 7}`)
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeBody[api.OrderResponse](t, rec)
		assert.Equal(t, 7, updated.Quantity)
		assert.Equal(t, created.Item, updated.Item)
		assert.Equal(t, created.UserID, updated.UserID)
	})

	t.Run("explicit_null_is_rejected", func(t *testing.T) {
		_, path := seed(t)

		rec := doJSON(t, router, http.MethodPatch, path, `{"item": null}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody[errorBody](t, rec)
		require.NotEmpty(t, body.Fields)
		assert.Equal(t, "item", body.Fields[0].Field)
		assert.Equal(t, "must not be null", body.Fields[0].Message)
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		_, path := seed(t)

		rec := doJSON(t, router, http.MethodPatch, path, `{"quantity": 0}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("user_id_is_not_patchable", func(t *testing.T) {
		created, path := seed(t)

		rec := doJSON(t, router, http.MethodPatch, path, `{"user_id": 99999}`)
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeBody[api.OrderResponse](t, rec)
		assert.Equal(t, created.UserID, updated.UserID)
	})
}

func TestOrderEndpoints_Delete(t *testing.T) {
	router, _, _ := newTestRouter(t)
	user := createTestUser(t, router, "Alice Rahman", "alice@example.com")
	created := createTestOrder(t, router, user.ID, "Widget", 1)
	path := "/orders/" + strconv.Itoa(created.ID)

	rec := doJSON(t, router, http.MethodDelete, path, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, path, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "Order not found", body.Error)
}

func TestOrderEndpoints_DanglingAfterUserDelete(t *testing.T) {
	router, _, _ := newTestRouter(t)
	user := createTestUser(t, router, "Alice Rahman", "alice@example.com")
	created := createTestOrder(t, router, user.ID, "Widget", 1)

	rec := doJSON(t, router, http.MethodDelete, "/users/"+strconv.Itoa(user.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The existing-user check applies only at creation and replacement, so
	// the order survives its owner.
	rec = doJSON(t, router, http.MethodGet, "/orders/"+strconv.Itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeBody[api.OrderResponse](t, rec))
}
