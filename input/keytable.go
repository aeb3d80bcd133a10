package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Heading    core.Heading
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings: WASD, arrows and vi hjkl
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     {IntentTurn, core.HeadingUp},
			tcell.KeyDown:   {IntentTurn, core.HeadingDown},
			tcell.KeyLeft:   {IntentTurn, core.HeadingLeft},
			tcell.KeyRight:  {IntentTurn, core.HeadingRight},
			tcell.KeyEscape: {IntentQuit, core.HeadingUp},
			tcell.KeyCtrlC:  {IntentQuit, core.HeadingUp},
			tcell.KeyCtrlS:  {IntentToggleMute, core.HeadingUp},
		},

		Runes: map[rune]KeyEntry{
			'w': {IntentTurn, core.HeadingUp},
			'a': {IntentTurn, core.HeadingLeft},
			's': {IntentTurn, core.HeadingDown},
			'd': {IntentTurn, core.HeadingRight},
			'W': {IntentTurn, core.HeadingUp},
			'A': {IntentTurn, core.HeadingLeft},
			'S': {IntentTurn, core.HeadingDown},
			'D': {IntentTurn, core.HeadingRight},

			'k': {IntentTurn, core.HeadingUp},
			'h': {IntentTurn, core.HeadingLeft},
			'j': {IntentTurn, core.HeadingDown},
			'l': {IntentTurn, core.HeadingRight},

			'q': {IntentQuit, core.HeadingUp},
			'm': {IntentToggleMute, core.HeadingUp},
		},
	}
}

// Resolve maps a key event to an intent, IntentNone when unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = kt.Runes[ev.Rune()]
	} else {
		entry, ok = kt.SpecialKeys[ev.Key()]
	}
	if !ok {
		return Intent{Type: IntentNone}
	}
	return Intent{Type: entry.IntentType, Heading: entry.Heading}
}

// Lookup maps a key event to a heading, false for keys that are not direction keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (core.Heading, bool) {
	intent := kt.Resolve(ev)
	if intent.Type != IntentTurn {
		return core.HeadingUp, false
	}
	return intent.Heading, true
}

// IsQuit reports whether the key ends the session
func (kt *KeyTable) IsQuit(ev *tcell.EventKey) bool {
	return kt.Resolve(ev).Type == IntentQuit
}

// Merge applies a sparse override table on top of kt
// An overridden action loses its default bindings so a rebind does not leave both keys active
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}

	rebound := make(map[KeyEntry]bool)
	for _, e := range override.SpecialKeys {
		rebound[e] = true
	}
	for _, e := range override.Runes {
		rebound[e] = true
	}

	for k, e := range kt.SpecialKeys {
		if rebound[e] {
			delete(kt.SpecialKeys, k)
		}
	}
	for r, e := range kt.Runes {
		if rebound[e] {
			delete(kt.Runes, r)
		}
	}

	for k, e := range override.SpecialKeys {
		kt.SpecialKeys[k] = e
	}
	for r, e := range override.Runes {
		kt.Runes[r] = e
	}
}
