package systems

import (
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// ObstacleSystem scrolls live pairs left and culls those past the left edge
type ObstacleSystem struct {
	speed float64
}

// NewObstacleSystem creates an obstacle system scrolling at speed units per tick
func NewObstacleSystem(speed float64) *ObstacleSystem {
	return &ObstacleSystem{speed: speed}
}

func (obs *ObstacleSystem) Priority() int {
	return constants.PriorityObstacle
}

func (obs *ObstacleSystem) Phases() engine.PhaseMask {
	return engine.MaskFlying
}

func (obs *ObstacleSystem) Update(w *engine.World) {
	// Filter in place, preserving spawn order
	live := w.Obstacles[:0]
	for _, pair := range w.Obstacles {
		pair.Advance(obs.speed)
		if pair.OffScreen() {
			continue
		}
		live = append(live, pair)
	}
	clear(w.Obstacles[len(live):])
	w.Obstacles = live
}
