package engine

import (
	"github.com/lixenwraith/vi-snake/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World keeps every store behind this interface to destroy entities without knowing concrete types
type AnyStore interface {
	// RemoveComponent deletes a component from an entity
	RemoveComponent(e core.Entity)

	// HasComponent checks if an entity has this component
	HasComponent(e core.Entity) bool

	// CountEntity returns the number of entities with this component
	CountEntity() int

	// ClearAllComponent removes all components from this store
	ClearAllComponent()
}
