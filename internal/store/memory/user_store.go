package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/demo-api/internal/domain"
	"github.com/example/demo-api/internal/store"
)

// UserStore is an in-memory implementation of store.UserStore.
//
// Records live in a map keyed by id; a separate slice tracks insertion
// order so List is deterministic (maps iterate in random order).
type UserStore struct {
	mu    sync.Mutex
	seq   sequence
	users map[int]*domain.User
	ids   []int
}

// Statically verify the interface is satisfied.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[int]*domain.User),
	}
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.seq.next()

	stored := *user
	s.users[stored.ID] = &stored
	s.ids = append(s.ids, stored.ID)

	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	found := *user
	return &found, nil
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset >= len(s.ids) {
		return []*domain.User{}, nil
	}

	end := offset + limit
	if end > len(s.ids) {
		end = len(s.ids)
	}

	users := make([]*domain.User, 0, end-offset)
	for _, id := range s.ids[offset:end] {
		found := *s.users[id]
		users = append(users, &found)
	}

	return users, nil
}

// Replace implements store.UserStore.
func (s *UserStore) Replace(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}

	stored := *user
	s.users[stored.ID] = &stored

	return nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(ctx context.Context, id int, patch store.UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	// Merge into a copy so a failed validation leaves the record untouched.
	merged := *user
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}
	if patch.Age != nil {
		merged.Age = *patch.Age
	}

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.users[id] = &merged

	updated := merged
	return &updated, nil
}

// Delete implements store.UserStore.
func (s *UserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}

	delete(s.users, id)
	for i, stored := range s.ids {
		if stored == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}

	return nil
}
