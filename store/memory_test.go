package store

import (
	"fmt"
	"sync"
	"testing"

	"herodle/models"
)

func TestMemoryStoreUnknownKeyIsEmpty(t *testing.T) {
	s := NewMemoryCollectionStore()
	cards, err := s.Snapshot("nobody")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(cards) != 0 {
		t.Fatalf("unknown key returned %d cards", len(cards))
	}
}

func TestMemoryStoreAppendPreservesOrder(t *testing.T) {
	s := NewMemoryCollectionStore()
	for i := 0; i < 5; i++ {
		card := models.CardInstance{ID: fmt.Sprintf("card-%d", i), Position: i}
		if err := s.Append("alice", card); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	cards, err := s.Snapshot("alice")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(cards) != 5 {
		t.Fatalf("got %d cards, want 5", len(cards))
	}
	for i, card := range cards {
		if card.Position != i {
			t.Fatalf("card at index %d has position %d", i, card.Position)
		}
	}
}

func TestMemoryStoreKeysAreIsolated(t *testing.T) {
	s := NewMemoryCollectionStore()
	if err := s.Append("alice", models.CardInstance{ID: "a-1"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	bobCards, _ := s.Snapshot("bob")
	if len(bobCards) != 0 {
		t.Fatalf("bob sees alice's %d cards", len(bobCards))
	}
}

func TestMemoryStoreSnapshotIsACopy(t *testing.T) {
	s := NewMemoryCollectionStore()
	s.Append("alice", models.CardInstance{ID: "a-1"})

	snap, _ := s.Snapshot("alice")
	snap[0].ID = "mutated"

	again, _ := s.Snapshot("alice")
	if again[0].ID != "a-1" {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}

func TestMemoryStoreConcurrentAppends(t *testing.T) {
	s := NewMemoryCollectionStore()
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append("alice", models.CardInstance{ID: fmt.Sprintf("card-%d", n)})
		}(i)
	}
	wg.Wait()

	cards, err := s.Snapshot("alice")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(cards) != writers {
		t.Fatalf("got %d cards after %d concurrent appends", len(cards), writers)
	}

	seen := make(map[string]bool)
	for _, card := range cards {
		if seen[card.ID] {
			t.Fatalf("duplicate card id %s", card.ID)
		}
		seen[card.ID] = true
	}
}
