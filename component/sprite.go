package component

// Appearance selects the visual variant presented for an entity
type Appearance uint8

const (
	AppearanceNormal Appearance = iota
	AppearanceCrashed
)

// SpriteComponent carries presentation-facing visual state
// The core only flips Appearance, texture/glyph resolution belongs to the renderer
type SpriteComponent struct {
	Appearance Appearance
}
