package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write literally in TOML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames is the lowercased reverse of tcell.KeyNames, e.g. "up", "esc", "ctrl-c"
var specialKeyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig builds a sparse override KeyTable from action name → key names
// Action names: up, down, left, right, quit, mute
// Key names: a single character, a rune alias, or a tcell key name (case-insensitive)
func LoadKeyConfig(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	// Sorted for deterministic duplicate detection
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		entry, ok := actionNames[strings.ToLower(action)]
		if !ok {
			return nil, fmt.Errorf("keys: unknown action %q", action)
		}

		for _, name := range bindings[action] {
			if r, ok := parseRune(name); ok {
				if prev, dup := kt.Runes[r]; dup && prev != entry {
					return nil, fmt.Errorf("keys: %q bound to more than one action", name)
				}
				kt.Runes[r] = entry
				continue
			}

			key, ok := specialKeyNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("keys.%s: unknown key name %q", action, name)
			}
			if prev, dup := kt.SpecialKeys[key]; dup && prev != entry {
				return nil, fmt.Errorf("keys: %q bound to more than one action", name)
			}
			kt.SpecialKeys[key] = entry
		}
	}

	return kt, nil
}

// parseRune accepts a single character or a rune alias
func parseRune(name string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, true
	}
	return 0, false
}
