package component

// OrbComponent marks the consumable target, exactly one exists per world
type OrbComponent struct{}
