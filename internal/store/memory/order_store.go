package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/demo-api/internal/domain"
	"github.com/example/demo-api/internal/store"
)

// OrderStore is an in-memory implementation of store.OrderStore.
// It is fully independent of UserStore; dangling user references are
// allowed once a user has been deleted.
type OrderStore struct {
	mu     sync.Mutex
	seq    sequence
	orders map[int]*domain.Order
	ids    []int
}

var _ store.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates an empty OrderStore.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[int]*domain.Order),
	}
}

// Create implements store.OrderStore.
func (s *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.seq.next()

	stored := *order
	s.orders[stored.ID] = &stored
	s.ids = append(s.ids, stored.ID)

	return nil
}

// GetByID implements store.OrderStore.
func (s *OrderStore) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, store.ErrOrderNotFound
	}

	found := *order
	return &found, nil
}

// List implements store.OrderStore.
func (s *OrderStore) List(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset >= len(s.ids) {
		return []*domain.Order{}, nil
	}

	end := offset + limit
	if end > len(s.ids) {
		end = len(s.ids)
	}

	orders := make([]*domain.Order, 0, end-offset)
	for _, id := range s.ids[offset:end] {
		found := *s.orders[id]
		orders = append(orders, &found)
	}

	return orders, nil
}

// ListByUser implements store.OrderStore.
func (s *OrderStore) ListByUser(ctx context.Context, userID int) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := []*domain.Order{}
	for _, id := range s.ids {
		if s.orders[id].UserID != userID {
			continue
		}
		found := *s.orders[id]
		orders = append(orders, &found)
	}

	return orders, nil
}

// Replace implements store.OrderStore.
func (s *OrderStore) Replace(ctx context.Context, order *domain.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; !ok {
		return store.ErrOrderNotFound
	}

	stored := *order
	s.orders[stored.ID] = &stored

	return nil
}

// Update implements store.OrderStore.
func (s *OrderStore) Update(ctx context.Context, id int, patch store.OrderPatch) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, store.ErrOrderNotFound
	}

	merged := *order
	if patch.Item != nil {
		merged.Item = *patch.Item
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if patch.Total != nil {
		merged.Total = *patch.Total
	}

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.orders[id] = &merged

	updated := merged
	return &updated, nil
}

// Delete implements store.OrderStore.
func (s *OrderStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return store.ErrOrderNotFound
	}

	delete(s.orders, id)
	for i, stored := range s.ids {
		if stored == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}

	return nil
}
