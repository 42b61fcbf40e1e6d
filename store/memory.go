// store/memory.go
package store

import (
	"sync"

	"herodle/models"
)

// MemoryCollectionStore keeps collections in process memory. This is the
// default backend: cards live for the process lifetime and there is no
// deletion path.
type MemoryCollectionStore struct {
	mu          sync.RWMutex
	collections map[string][]models.CardInstance
}

func NewMemoryCollectionStore() *MemoryCollectionStore {
	return &MemoryCollectionStore{
		collections: make(map[string][]models.CardInstance),
	}
}

func (s *MemoryCollectionStore) Append(userKey string, card models.CardInstance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[userKey] = append(s.collections[userKey], card)
	return nil
}

func (s *MemoryCollectionStore) Snapshot(userKey string) ([]models.CardInstance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := s.collections[userKey]
	out := make([]models.CardInstance, len(cards))
	copy(out, cards)
	return out, nil
}
