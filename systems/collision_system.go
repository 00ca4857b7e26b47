package systems

import (
	"github.com/lixenwraith/humblebee/components"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// CollisionKind names what the player hit
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionObstacle
	CollisionCeiling
	CollisionGround
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionObstacle:
		return "obstacle"
	case CollisionCeiling:
		return "ceiling"
	case CollisionGround:
		return "ground"
	default:
		return "none"
	}
}

// Collides reports the first collision condition of the player against the
// playfield and the live obstacles. Obstacles test the inset hitbox, the
// playfield edges test the full sprite bounds
func Collides(p *components.Player, obstacles []*components.ObstaclePair) CollisionKind {
	hitbox := p.Hitbox()
	for _, pair := range obstacles {
		for _, r := range pair.Rects() {
			if hitbox.Intersects(r) {
				return CollisionObstacle
			}
		}
	}

	bounds := p.Bounds()
	if bounds.Top() < 0 {
		return CollisionCeiling
	}
	if bounds.Bottom() >= constants.GroundY {
		return CollisionGround
	}
	return CollisionNone
}

// CollisionDetector latches the collided condition so only the entering tick
// reports it
type CollisionDetector struct {
	colliding bool
}

// Check evaluates the world and returns the kind plus whether this tick is
// the transition into the collided condition
func (d *CollisionDetector) Check(p *components.Player, obstacles []*components.ObstaclePair) (CollisionKind, bool) {
	kind := Collides(p, obstacles)
	now := kind != CollisionNone
	entered := now && !d.colliding
	d.colliding = now
	return kind, entered
}

// Reset clears the latch
func (d *CollisionDetector) Reset() {
	d.colliding = false
}

// CollisionSystem ends the flight on the first tick of a collision
type CollisionSystem struct {
	detector CollisionDetector
	// LastKind is what ended the most recent flight
	LastKind CollisionKind
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (cs *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (cs *CollisionSystem) Phases() engine.PhaseMask {
	return engine.MaskFlying
}

func (cs *CollisionSystem) Update(w *engine.World) {
	// A fresh flight starts with a clear latch
	if w.ReadPhaseState().Duration == 0 {
		cs.detector.Reset()
	}

	kind, entered := cs.detector.Check(w.Player, w.Obstacles)
	if !entered {
		return
	}
	cs.LastKind = kind
	// GameOver entry queues the crash cue
	w.TransitionPhase(engine.PhaseGameOver)
}
