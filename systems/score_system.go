package systems

import (
	"github.com/lixenwraith/humblebee/components"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// ScoreSystem awards one point per cleared pair using a two-phase latch:
// the hitbox must first sit inside the pair's span (Passed), then its left
// edge must move beyond the pair's right edge (Credited)
type ScoreSystem struct{}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

func (s *ScoreSystem) Phases() engine.PhaseMask {
	return engine.MaskFlying
}

func (s *ScoreSystem) Update(w *engine.World) {
	pair := nearestUncredited(w.Obstacles)
	if pair == nil {
		return
	}
	if AdvanceLatch(pair, w.Player) {
		w.AddScore(1)
	}
}

// AdvanceLatch moves the pair's latch forward and reports whether a point is due.
// A pair whose span is crossed within a single tick never sets Passed and is
// not credited
func AdvanceLatch(pair *components.ObstaclePair, p *components.Player) bool {
	hitbox := p.Hitbox()

	if !pair.Passed && hitbox.Left() > pair.Left() && hitbox.Right() < pair.Right() {
		pair.Passed = true
	}

	if pair.Passed && !pair.Credited && hitbox.Left() > pair.Right() {
		pair.Credited = true
		return true
	}
	return false
}

// nearestUncredited returns the earliest spawned live pair still eligible
func nearestUncredited(obstacles []*components.ObstaclePair) *components.ObstaclePair {
	for _, pair := range obstacles {
		if !pair.Credited {
			return pair
		}
	}
	return nil
}
