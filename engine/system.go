package engine

// System is a unit of per-tick game logic
// Systems run in ascending Priority order under the world update lock
type System interface {
	Update()
	Priority() int
}
