package memory

import (
	"context"
	"testing"

	"github.com/example/demo-api/internal/domain"
	"github.com/example/demo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(userID int) *domain.Order {
	return &domain.Order{
		UserID:   userID,
		Item:     "Widget",
		Quantity: 2,
		Total:    19.98,
	}
}

func TestOrderStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns_strictly_increasing_ids", func(t *testing.T) {
		s := NewOrderStore()

		last := 0
		for i := 0; i < 4; i++ {
			order := newOrder(1)
			require.NoError(t, s.Create(ctx, order))
			assert.Greater(t, order.ID, last)
			last = order.ID
		}
	})

	t.Run("rejects_invalid_order", func(t *testing.T) {
		s := NewOrderStore()

		err := s.Create(ctx, &domain.Order{UserID: 1, Item: "Widget", Quantity: 0})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		orders, err := s.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("does_not_reuse_deleted_ids", func(t *testing.T) {
		s := NewOrderStore()

		first := newOrder(1)
		require.NoError(t, s.Create(ctx, first))
		require.NoError(t, s.Delete(ctx, first.ID))

		second := newOrder(1)
		require.NoError(t, s.Create(ctx, second))
		assert.Greater(t, second.ID, first.ID)
	})
}

func TestOrderStore_GetByID(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	created := newOrder(1)
	require.NoError(t, s.Create(ctx, created))

	t.Run("round_trip", func(t *testing.T) {
		found, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("missing_id", func(t *testing.T) {
		_, err := s.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, store.ErrOrderNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})
}

func TestOrderStore_List(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	var ids []int
	for i := 0; i < 5; i++ {
		order := newOrder(1)
		require.NoError(t, s.Create(ctx, order))
		ids = append(ids, order.ID)
	}

	t.Run("window_follows_insertion_order", func(t *testing.T) {
		orders, err := s.List(ctx, 1, 3)
		require.NoError(t, err)

		got := make([]int, 0, len(orders))
		for _, o := range orders {
			got = append(got, o.ID)
		}
		assert.Equal(t, []int{ids[1], ids[2], ids[3]}, got)
	})

	t.Run("offset_past_end", func(t *testing.T) {
		orders, err := s.List(ctx, 50, 10)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestOrderStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	for _, userID := range []int{1, 2, 1, 3, 1} {
		require.NoError(t, s.Create(ctx, newOrder(userID)))
	}

	t.Run("returns_only_matching_orders", func(t *testing.T) {
		orders, err := s.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		for _, o := range orders {
			assert.Equal(t, 1, o.UserID)
		}
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		orders, err := s.ListByUser(ctx, 1)
		require.NoError(t, err)

		for i := 1; i < len(orders); i++ {
			assert.Greater(t, orders[i].ID, orders[i-1].ID)
		}
	})

	t.Run("user_without_orders", func(t *testing.T) {
		orders, err := s.ListByUser(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestOrderStore_Replace(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	created := newOrder(1)
	require.NoError(t, s.Create(ctx, created))

	t.Run("replaces_all_fields", func(t *testing.T) {
		err := s.Replace(ctx, &domain.Order{
			ID:       created.ID,
			UserID:   2,
			Item:     "Gadget",
			Quantity: 5,
			Total:    49.95,
		})
		require.NoError(t, err)

		found, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, found.UserID)
		assert.Equal(t, "Gadget", found.Item)
		assert.Equal(t, 5, found.Quantity)
		assert.InDelta(t, 49.95, found.Total, 0.001)
	})

	t.Run("missing_id", func(t *testing.T) {
		err := s.Replace(ctx, newOrder(1))
		assert.ErrorIs(t, err, store.ErrOrderNotFound)
	})
}

func TestOrderStore_Update(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*OrderStore, *domain.Order) {
		s := NewOrderStore()
		order := newOrder(1)
		require.NoError(t, s.Create(ctx, order))
		return s, order
	}

	strPtr := func(v string) *string { return &v }
	intPtr := func(v int) *int { return &v }

	t.Run("empty_patch_changes_nothing", func(t *testing.T) {
		s, order := seed(t)

		updated, err := s.Update(ctx, order.ID, store.OrderPatch{})
		require.NoError(t, err)
		assert.Equal(t, order, updated)
	})

	t.Run("patch_keeps_user_id", func(t *testing.T) {
		s, order := seed(t)

		updated, err := s.Update(ctx, order.ID, store.OrderPatch{
			Item:     strPtr("Gadget"),
			Quantity: intPtr(7),
		})
		require.NoError(t, err)
		assert.Equal(t, order.UserID, updated.UserID)
		assert.Equal(t, "Gadget", updated.Item)
		assert.Equal(t, 7, updated.Quantity)
	})

	t.Run("failed_validation_leaves_record_untouched", func(t *testing.T) {
		s, order := seed(t)

		_, err := s.Update(ctx, order.ID, store.OrderPatch{Quantity: intPtr(0)})
		require.ErrorIs(t, err, store.ErrInvalidEntity)

		found, err := s.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.Quantity, found.Quantity)
	})

	t.Run("missing_id", func(t *testing.T) {
		s, _ := seed(t)

		_, err := s.Update(ctx, 99999, store.OrderPatch{Item: strPtr("Ghost")})
		assert.ErrorIs(t, err, store.ErrOrderNotFound)
	})
}

func TestOrderStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()

	created := newOrder(1)
	require.NoError(t, s.Create(ctx, created))

	require.NoError(t, s.Delete(ctx, created.ID))

	_, err := s.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)

	err = s.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)
}
