// Converts a character export (the JSON the ML sidecar's export script
// produces from the frontend roster) into the embedded catalog format.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"herodle/models"
)

// exportedCharacter mirrors the sidecar export shape, which nests powers and
// alignment under an attributes object.
type exportedCharacter struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Universe string   `json:"universe"`
	Genre    string   `json:"genre"`
	Quote    string   `json:"quote"`
	Aliases  []string `json:"aliases"`
	ImageURL string   `json:"imageUrl"`

	Attributes struct {
		Alignment string   `json:"alignment"`
		Powers    []string `json:"powers"`
	} `json:"attributes"`
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func main() {
	in := flag.String("in", "./characters-export.json", "exported character JSON")
	out := flag.String("out", "./services/characters.json", "catalog output path")
	flag.Parse()

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}

	var exported []exportedCharacter
	if err := json.Unmarshal(data, &exported); err != nil {
		log.Fatalf("Failed to parse %s: %v", *in, err)
	}

	catalog := make([]models.Character, 0, len(exported))
	for _, ec := range exported {
		id := ec.ID
		if id == "" {
			id = slugify(ec.Name)
		}
		catalog = append(catalog, models.Character{
			ID:                id,
			Name:              ec.Name,
			Universe:          ec.Universe,
			Genre:             ec.Genre,
			Alignment:         ec.Attributes.Alignment,
			Quote:             ec.Quote,
			Aliases:           ec.Aliases,
			Powers:            ec.Attributes.Powers,
			ImageURL:          ec.ImageURL,
			CharacterImageURL: "/images/characters/" + id + ".png",
		})
	}

	output, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
	output = append(output, '\n')

	if err := os.WriteFile(*out, output, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Imported %d characters into %s\n", len(catalog), *out)
}

func slugify(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
