package engine

import (
	"github.com/lixenwraith/vi-snake/component"
)

// ComponentStore provides cached pointers to typed component stores
type ComponentStore struct {
	Position *Store[component.PositionComponent]
	Head     *Store[component.HeadComponent]
	Body     *Store[component.BodyComponent]
	Orb      *Store[component.OrbComponent]
	Sprite   *Store[component.SpriteComponent]
}

// initComponentStores creates every store and registers it for lifecycle operations
func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Position: NewStore[component.PositionComponent](),
		Head:     NewStore[component.HeadComponent](),
		Body:     NewStore[component.BodyComponent](),
		Orb:      NewStore[component.OrbComponent](),
		Sprite:   NewStore[component.SpriteComponent](),
	}

	w.allStores = []AnyStore{
		w.Components.Position,
		w.Components.Head,
		w.Components.Body,
		w.Components.Orb,
		w.Components.Sprite,
	}
}
