// models/collection.go
package models

// CollectionSummary aggregates one user's collection for the read endpoint.
// RarityCount always carries all five tiers, defaulting to 0.
type CollectionSummary struct {
	TotalCards           int            `json:"total_cards"`
	UniqueCharacters     int            `json:"unique_characters"`
	RarityCount          map[Rarity]int `json:"rarity_count"`
	CompletionPercentage float64        `json:"completion_percentage"`
}
