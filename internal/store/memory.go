package store

import (
	"context"
	"sort"
	"sync"

	"github.com/lakestash/lakestash/internal/model"
)

// MemoryStore is an in-memory Store used in development mode and as the test
// fake. Items live in per-user maps, mirroring the partition-key layout of
// the real backend.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[string]model.Item
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: map[string]map[string]model.Item{}}
}

func (s *MemoryStore) Create(_ context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partition, ok := s.users[item.UserID]
	if !ok {
		partition = map[string]model.Item{}
		s.users[item.UserID] = partition
	}
	partition[item.ID] = *item
	return nil
}

func (s *MemoryStore) List(_ context.Context, userID string) ([]model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []model.Item
	for _, item := range s.users[userID] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].UpdatedAt.After(items[j].UpdatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *MemoryStore) Get(_ context.Context, userID, id string) (*model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.users[userID][id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *MemoryStore) Replace(_ context.Context, item *model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partition := s.users[item.UserID]
	if _, ok := partition[item.ID]; !ok {
		return ErrNotFound
	}
	partition[item.ID] = *item
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partition := s.users[userID]
	if _, ok := partition[id]; !ok {
		return ErrNotFound
	}
	delete(partition, id)
	return nil
}
