package handlers

import (
	"net/http"
	"testing"
	"time"

	"herodle/services"
)

func TestGetCharactersReturnsCatalog(t *testing.T) {
	app := newTestApp(t)

	status, resp := doJSON(t, app, http.MethodGet, "/api/characters", nil, "")
	if status != 200 || resp["success"] != true {
		t.Fatalf("status %d, body %v", status, resp)
	}
	characters := resp["characters"].([]any)
	if len(characters) == 0 {
		t.Fatal("catalog came back empty")
	}
	if int(resp["total"].(float64)) != len(characters) {
		t.Fatalf("total %v disagrees with %d characters", resp["total"], len(characters))
	}
}

func TestGetCharacterByIDEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, resp := doJSON(t, app, http.MethodGet, "/api/characters/batman", nil, "")
	if status != 200 {
		t.Fatalf("status %d, body %v", status, resp)
	}
	character := resp["character"].(map[string]any)
	if character["id"] != "batman" || character["universe"] != "DC" {
		t.Fatalf("character %v", character)
	}

	status, resp = doJSON(t, app, http.MethodGet, "/api/characters/no-such-character", nil, "")
	if status != 404 || resp["error"] != "Character not found" {
		t.Fatalf("status %d, body %v, want 404", status, resp)
	}
}

func TestGetDailyCharacterEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, resp := doJSON(t, app, http.MethodGet, "/api/characters/daily", nil, "")
	if status != 200 || resp["success"] != true {
		t.Fatalf("status %d, body %v", status, resp)
	}
	if resp["date"] != time.Now().UTC().Format("2006-01-02") {
		t.Fatalf("date %v", resp["date"])
	}

	character := resp["character"].(map[string]any)
	want, ok := services.DailyCharacter(time.Now())
	if !ok {
		t.Fatal("no daily character available")
	}
	if character["id"] != want.ID {
		t.Fatalf("daily character %v, want %s", character["id"], want.ID)
	}
}
