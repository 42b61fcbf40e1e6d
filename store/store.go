// store/store.go - Collection storage behind a repository interface
package store

import "herodle/models"

// CollectionRepository is the append-only card store, keyed by an opaque user
// key so a future multi-user deployment only has to change who supplies the
// key. Appends completed before a Snapshot in the same execution context must
// be visible in that Snapshot.
type CollectionRepository interface {
	// Append adds a card to the end of the user's sequence, creating the
	// sequence on first use. No capacity limit, no deduplication.
	Append(userKey string, card models.CardInstance) error

	// Snapshot returns the user's cards in unlock (append) order. Unknown
	// keys yield an empty collection, never an error.
	Snapshot(userKey string) ([]models.CardInstance, error)
}
