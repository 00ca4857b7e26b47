package systems

import (
	"math"

	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// GroundSystem scrolls the ground tiling offset while flying
type GroundSystem struct {
	speed float64
}

func NewGroundSystem(speed float64) *GroundSystem {
	return &GroundSystem{speed: speed}
}

func (gs *GroundSystem) Priority() int {
	return constants.PriorityGround
}

func (gs *GroundSystem) Phases() engine.PhaseMask {
	return engine.MaskFlying
}

func (gs *GroundSystem) Update(w *engine.World) {
	w.GroundScroll = ScrollGround(w.GroundScroll, gs.speed)
}

// ScrollGround decrements the offset and wraps to 0 once its magnitude
// exceeds the tile width
func ScrollGround(offset, speed float64) float64 {
	offset -= speed
	if math.Abs(offset) > constants.GroundTileWidth {
		offset = 0
	}
	return offset
}
