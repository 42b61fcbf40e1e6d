package services

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"herodle/models"
)

//go:embed characters.json
var charactersJSON []byte

var (
	characterList  []models.Character
	charactersByID map[string]*models.Character
	charactersErr  error
)

// LoadCharacters parses the embedded character catalog into package state.
// Safe to call more than once; the catalog is parsed only on the first call.
func LoadCharacters() error {
	if len(characterList) > 0 {
		return nil // Already loaded
	}
	if charactersErr != nil {
		return charactersErr
	}

	if err := json.Unmarshal(charactersJSON, &characterList); err != nil {
		charactersErr = fmt.Errorf("failed to parse characters.json: %w", err)
		return charactersErr
	}

	charactersByID = make(map[string]*models.Character, len(characterList))
	for i := range characterList {
		charactersByID[characterList[i].ID] = &characterList[i]
	}

	log.Printf("Loaded %d characters into catalog", len(characterList))
	return nil
}

// GetCharacterByID looks a character up by its catalog id.
func GetCharacterByID(id string) (*models.Character, bool) {
	if err := LoadCharacters(); err != nil {
		return nil, false
	}
	ch, ok := charactersByID[id]
	return ch, ok
}

// GetCharacterByName looks a character up by display name or alias,
// case-insensitively. Used for guess matching.
func GetCharacterByName(name string) (*models.Character, bool) {
	if err := LoadCharacters(); err != nil {
		return nil, false
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range characterList {
		if strings.ToLower(characterList[i].Name) == needle {
			return &characterList[i], true
		}
		for _, alias := range characterList[i].Aliases {
			if strings.ToLower(alias) == needle {
				return &characterList[i], true
			}
		}
	}
	return nil, false
}

// AllCharacters returns the full catalog in file order.
func AllCharacters() []models.Character {
	if err := LoadCharacters(); err != nil {
		return nil
	}
	return characterList
}

// CharacterCount is the total number of known characters, used for the
// collection completion percentage.
func CharacterCount() int {
	if err := LoadCharacters(); err != nil {
		return 0
	}
	return len(characterList)
}

// DailyCharacter picks the character of the day: the day index since the Unix
// epoch (UTC) taken modulo the catalog size, so every client agrees on the
// same pick without coordination.
func DailyCharacter(now time.Time) (*models.Character, bool) {
	if err := LoadCharacters(); err != nil || len(characterList) == 0 {
		return nil, false
	}
	days := int(now.UTC().Unix() / 86400)
	return &characterList[days%len(characterList)], true
}
