package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone       IntentType = iota
	IntentQuit                  // Esc, Ctrl+C, q
	IntentTurn                  // Direction keys
	IntentToggleMute            // Ctrl+S, m
)

// Intent is the resolved meaning of one key press
type Intent struct {
	Type    IntentType
	Heading core.Heading // Valid for IntentTurn
}

// actionNames maps config action names to key entries
// Headings use their own names; quit and mute are host actions
var actionNames = map[string]KeyEntry{
	"up":    {IntentTurn, core.HeadingUp},
	"down":  {IntentTurn, core.HeadingDown},
	"left":  {IntentTurn, core.HeadingLeft},
	"right": {IntentTurn, core.HeadingRight},
	"quit":  {IntentQuit, core.HeadingUp},
	"mute":  {IntentToggleMute, core.HeadingUp},
}
