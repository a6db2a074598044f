package glyphs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/owmods/fontpatch/internal/fonts"
)

// cyrillicAlphabet is the full modern Russian alphabet in both cases. It is
// always part of the required set, so baseline coverage is checked even when
// the mod text happens to omit a letter.
const cyrillicAlphabet = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ" +
	"абвгдеёжзийклмнопрстуфхцчшщъыьэюя"

// RequiredCharacters collects the Cyrillic characters referenced by the mod
// configuration under the auditor's root, plus the alphabet baseline. The
// result is sorted by code point and free of duplicates.
func (a *Auditor) RequiredCharacters() ([]rune, error) {
	modsDir := filepath.Join(a.root, fonts.PatchDir, "Mods")

	var texts []string
	for _, mod := range []string{fonts.ModCheats, fonts.ModClock} {
		settings, err := settingsTexts(filepath.Join(modsDir, mod, "config.json"))
		if err != nil {
			return nil, err
		}
		texts = append(texts, settings...)
	}

	names, err := eventNames(filepath.Join(modsDir, fonts.ModClock, "events.json"))
	if err != nil {
		return nil, err
	}
	texts = append(texts, names...)
	texts = append(texts, cyrillicAlphabet)

	return cyrillicCharacters(texts), nil
}

// settingsTexts extracts the string values from the "settings" object of a
// mod config file. A section may be a bare string or an object; objects
// contribute their string-typed members.
func settingsTexts(path string) ([]string, error) {
	var config struct {
		Settings map[string]any `json:"settings"`
	}
	if err := loadJSON(path, &config); err != nil {
		return nil, err
	}

	var texts []string
	for _, section := range config.Settings {
		switch value := section.(type) {
		case string:
			texts = append(texts, value)
		case map[string]any:
			for _, member := range value {
				if text, ok := member.(string); ok {
					texts = append(texts, text)
				}
			}
		}
	}

	return texts, nil
}

// eventNames extracts the Name field of every entry in a mod event list
func eventNames(path string) ([]string, error) {
	var events struct {
		EventList []map[string]any `json:"eventList"`
	}
	if err := loadJSON(path, &events); err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range events.EventList {
		if name, ok := entry["Name"].(string); ok {
			names = append(names, name)
		}
	}

	return names, nil
}

// loadJSON reads and decodes one JSON file
func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// cyrillicCharacters reduces texts to the sorted set of characters whose
// Unicode name contains "CYRILLIC"
func cyrillicCharacters(texts []string) []rune {
	seen := make(map[rune]struct{})
	for _, text := range texts {
		for _, r := range text {
			if strings.Contains(runenames.Name(r), "CYRILLIC") {
				seen[r] = struct{}{}
			}
		}
	}

	chars := make([]rune, 0, len(seen))
	for r := range seen {
		chars = append(chars, r)
	}
	slices.Sort(chars)

	return chars
}
