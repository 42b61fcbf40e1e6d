// models/card.go
package models

import "time"

// Rarity is the tier a card is minted at. It never changes after minting.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// Rarities lists all tiers in ascending order. Aggregations iterate this so
// every tier is always present in rarity counts, even at zero.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic}

// Variant is the cosmetic presentation tag, independent of rarity.
type Variant string

const (
	VariantStandard    Variant = "standard"
	VariantShiny       Variant = "shiny"
	VariantHolographic Variant = "holographic"
	VariantAnimated    Variant = "animated"
)

// MaxSupply returns the supply ceiling stamped on cards of this rarity.
func (r Rarity) MaxSupply() int {
	switch r {
	case RarityMythic:
		return 100
	case RarityLegendary:
		return 500
	case RarityEpic:
		return 1000
	case RarityRare:
		return 5000
	default:
		return 10000
	}
}

// CardStats is the stat triple assigned at mint time, each in [0,100].
type CardStats struct {
	Popularity int `json:"popularity" gorm:"not null"`
	Difficulty int `json:"difficulty" gorm:"not null"`
	Power      int `json:"power" gorm:"not null"`
}

// CardInstance is an immutable record of one minted card. Owned by the
// collection store once appended; never mutated afterwards.
type CardInstance struct {
	ID                string    `json:"id" gorm:"primaryKey;size:120"`
	UserKey           string    `json:"-" gorm:"index;not null;size:100"`
	Position          int       `json:"-" gorm:"index"` // append order within the user's collection
	CharacterID       string    `json:"character_id" gorm:"index;not null;size:100"`
	CharacterName     string    `json:"character_name" gorm:"not null;size:100"`
	Rarity            Rarity    `json:"rarity" gorm:"not null;size:20"`
	Variant           Variant   `json:"variant" gorm:"not null;size:20"`
	SerialNumber      int       `json:"serial_number" gorm:"not null"`
	MaxSupply         int       `json:"max_supply" gorm:"not null"`
	Stats             CardStats `json:"stats" gorm:"embedded;embeddedPrefix:stat_"`
	ImageURL          string    `json:"image_url" gorm:"type:text"`
	CharacterImageURL string    `json:"character_image_url" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
}

func (CardInstance) TableName() string {
	return "card_instances"
}
