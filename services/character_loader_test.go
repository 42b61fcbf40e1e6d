package services

import (
	"testing"
	"time"
)

func TestLoadCharactersCatalogNotEmpty(t *testing.T) {
	if err := LoadCharacters(); err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	if CharacterCount() == 0 {
		t.Fatal("catalog loaded empty")
	}
	if len(AllCharacters()) != CharacterCount() {
		t.Fatal("AllCharacters and CharacterCount disagree")
	}
}

func TestGetCharacterByID(t *testing.T) {
	ch, ok := GetCharacterByID("spider-man")
	if !ok {
		t.Fatal("spider-man missing from catalog")
	}
	if ch.Name != "Spider-Man" || ch.Universe != "Marvel" {
		t.Fatalf("unexpected spider-man record: %+v", ch)
	}

	if _, ok := GetCharacterByID("no-such-character"); ok {
		t.Fatal("lookup of unknown id succeeded")
	}
}

func TestGetCharacterByNameMatchesAliasesCaseInsensitively(t *testing.T) {
	cases := []struct {
		query  string
		wantID string
	}{
		{"Spider-Man", "spider-man"},
		{"spider-man", "spider-man"},
		{"  SPIDER-MAN  ", "spider-man"},
		{"spidey", "spider-man"},
		{"The Dark Knight", "batman"},
	}
	for _, tc := range cases {
		ch, ok := GetCharacterByName(tc.query)
		if !ok {
			t.Fatalf("name lookup %q failed", tc.query)
		}
		if ch.ID != tc.wantID {
			t.Fatalf("name lookup %q got %s, want %s", tc.query, ch.ID, tc.wantID)
		}
	}

	if _, ok := GetCharacterByName("nobody at all"); ok {
		t.Fatal("lookup of unknown name succeeded")
	}
}

func TestDailyCharacterIsStableWithinADay(t *testing.T) {
	morning := time.Date(2026, 8, 26, 0, 0, 1, 0, time.UTC)
	night := time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC)

	a, ok := DailyCharacter(morning)
	if !ok {
		t.Fatal("no daily character")
	}
	b, _ := DailyCharacter(night)
	if a.ID != b.ID {
		t.Fatalf("daily character changed within a day: %s vs %s", a.ID, b.ID)
	}

	// Timezone of the clock must not matter.
	tokyo := time.FixedZone("JST", 9*3600)
	c, _ := DailyCharacter(morning.In(tokyo))
	if a.ID != c.ID {
		t.Fatalf("daily character depends on clock timezone: %s vs %s", a.ID, c.ID)
	}
}

func TestDailyCharacterCyclesThroughCatalog(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for day := 0; day < CharacterCount(); day++ {
		ch, ok := DailyCharacter(start.AddDate(0, 0, day))
		if !ok {
			t.Fatal("no daily character")
		}
		seen[ch.ID] = true
	}
	if len(seen) != CharacterCount() {
		t.Fatalf("cycle over %d days hit %d distinct characters", CharacterCount(), len(seen))
	}
}
