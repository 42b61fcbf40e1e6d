package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"herodle/models"
)

var idRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func main() {
	path := "./services/characters.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("error: cannot read %s: %v\n", path, err)
		os.Exit(1)
	}

	var characters []models.Character
	if err := json.Unmarshal(data, &characters); err != nil {
		fmt.Printf("%s: invalid JSON: %v\n", path, err)
		os.Exit(1)
	}
	if len(characters) == 0 {
		fmt.Printf("%s: catalog is empty\n", path)
		os.Exit(1)
	}

	exitCode := 0
	seenIDs := make(map[string]bool)
	seenNames := make(map[string]bool)

	for i, ch := range characters {
		where := fmt.Sprintf("%s[%d]", path, i)

		if ch.ID == "" {
			fmt.Printf("%s: missing id\n", where)
			exitCode = 1
		} else {
			if !idRe.MatchString(ch.ID) {
				fmt.Printf("%s: id %q is not kebab-case\n", where, ch.ID)
				exitCode = 1
			}
			if seenIDs[ch.ID] {
				fmt.Printf("%s: duplicate id %q\n", where, ch.ID)
				exitCode = 1
			}
			seenIDs[ch.ID] = true
		}

		if ch.Name == "" {
			fmt.Printf("%s: missing name\n", where)
			exitCode = 1
		} else {
			if seenNames[ch.Name] {
				fmt.Printf("%s: duplicate name %q\n", where, ch.Name)
				exitCode = 1
			}
			seenNames[ch.Name] = true
		}

		if ch.Universe == "" {
			fmt.Printf("%s: %q missing universe\n", where, ch.ID)
			exitCode = 1
		}
		if ch.ImageURL == "" {
			fmt.Printf("%s: %q missing imageUrl\n", where, ch.ID)
			exitCode = 1
		}
	}

	if exitCode == 0 {
		fmt.Printf("%s: OK (%d characters)\n", path, len(characters))
	}
	os.Exit(exitCode)
}
