// models/character.go
package models

// Character is one entry of the static character catalog the game guesses
// against. Loaded once at startup; read-only afterwards.
type Character struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Universe          string   `json:"universe"` // Marvel, DC, Other
	Genre             string   `json:"genre,omitempty"`
	Alignment         string   `json:"alignment,omitempty"` // hero, villain, anti-hero
	Quote             string   `json:"quote,omitempty"`
	Aliases           []string `json:"aliases,omitempty"`
	Powers            []string `json:"powers,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	CharacterImageURL string   `json:"characterImageUrl,omitempty"`
}
