package component

// BodyComponent marks a snake body segment
// Segments propagate in body store insertion order; Index mirrors that order for consumers outside the world lock
type BodyComponent struct {
	Index int
}
