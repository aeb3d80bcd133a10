package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDefaultLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Heading
	}{
		{"w", runeKey('w'), core.HeadingUp},
		{"a", runeKey('a'), core.HeadingLeft},
		{"s", runeKey('s'), core.HeadingDown},
		{"d", runeKey('d'), core.HeadingRight},
		{"shift w", runeKey('W'), core.HeadingUp},
		{"k", runeKey('k'), core.HeadingUp},
		{"h", runeKey('h'), core.HeadingLeft},
		{"j", runeKey('j'), core.HeadingDown},
		{"l", runeKey('l'), core.HeadingRight},
		{"arrow up", specialKey(tcell.KeyUp), core.HeadingUp},
		{"arrow down", specialKey(tcell.KeyDown), core.HeadingDown},
		{"arrow left", specialKey(tcell.KeyLeft), core.HeadingLeft},
		{"arrow right", specialKey(tcell.KeyRight), core.HeadingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(tt.ev)
			if !ok {
				t.Fatalf("Expected %s to map to a heading", tt.name)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestUnmappedKeysIgnored(t *testing.T) {
	kt := DefaultKeyTable()

	for _, ev := range []*tcell.EventKey{runeKey('x'), runeKey('1'), specialKey(tcell.KeyEnter), specialKey(tcell.KeyEscape)} {
		if _, ok := kt.Lookup(ev); ok {
			t.Errorf("Expected %v to be ignored as direction", ev.Name())
		}
	}
}

func TestQuitKeys(t *testing.T) {
	kt := DefaultKeyTable()

	for _, ev := range []*tcell.EventKey{runeKey('q'), specialKey(tcell.KeyEscape), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)} {
		if !kt.IsQuit(ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}
	if kt.IsQuit(runeKey('w')) {
		t.Error("Expected w not to quit")
	}
}

func TestResolveMute(t *testing.T) {
	kt := DefaultKeyTable()
	if got := kt.Resolve(runeKey('m')).Type; got != IntentToggleMute {
		t.Errorf("Expected mute intent, got %v", got)
	}
	if got := kt.Resolve(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)).Type; got != IntentToggleMute {
		t.Errorf("Expected mute intent for Ctrl+S, got %v", got)
	}
}

func TestLoadKeyConfigAndMerge(t *testing.T) {
	override, err := LoadKeyConfig(map[string][]string{
		"up":   {"i", "PgUp"},
		"left": {"j"},
		"quit": {"space"},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if e, ok := override.SpecialKeys[tcell.KeyPgUp]; !ok || e.Heading != core.HeadingUp {
		t.Errorf("Expected PgUp bound to up, got %+v (ok=%v)", e, ok)
	}
	if e, ok := override.Runes[' ']; !ok || e.IntentType != IntentQuit {
		t.Errorf("Expected space bound to quit, got %+v (ok=%v)", e, ok)
	}

	kt := DefaultKeyTable()
	kt.Merge(override)

	if h, ok := kt.Lookup(runeKey('i')); !ok || h != core.HeadingUp {
		t.Errorf("Expected i to map to up, got %s (ok=%v)", h, ok)
	}
	// Rebinding an action drops its default keys
	if _, ok := kt.Lookup(runeKey('w')); ok {
		t.Error("Expected w unbound after up was rebound")
	}
	if _, ok := kt.Lookup(specialKey(tcell.KeyUp)); ok {
		t.Error("Expected arrow up unbound after up was rebound")
	}
	if h, ok := kt.Lookup(runeKey('j')); !ok || h != core.HeadingLeft {
		t.Errorf("Expected j to map to left, got %s (ok=%v)", h, ok)
	}
	// Untouched actions keep defaults
	if h, ok := kt.Lookup(runeKey('s')); !ok || h != core.HeadingDown {
		t.Errorf("Expected s to stay down, got %s (ok=%v)", h, ok)
	}
	if !kt.IsQuit(runeKey(' ')) || kt.IsQuit(runeKey('q')) {
		t.Error("Expected space to replace q as quit")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string][]string
	}{
		{"unknown action", map[string][]string{"jump": {"x"}}},
		{"unknown key", map[string][]string{"up": {"NotAKey"}}},
		{"conflict", map[string][]string{"up": {"x"}, "down": {"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig(tt.bindings); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestMergeNil(t *testing.T) {
	kt := DefaultKeyTable()
	before := len(kt.Runes)
	kt.Merge(nil)
	if len(kt.Runes) != before {
		t.Errorf("Expected %d runes, got %d", before, len(kt.Runes))
	}
}
