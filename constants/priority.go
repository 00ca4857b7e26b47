package constants

// System Execution Priorities (lower runs first)
// Collision must follow every mover so it sees this tick's positions, and
// scoring must follow collision so a crash tick awards nothing
const (
	PriorityPlayer    = 10
	PrioritySpawn     = 20
	PriorityObstacle  = 30 // After spawn, a new pair moves on its first tick
	PriorityGround    = 40
	PriorityCollision = 50
	PriorityScore     = 60
)
