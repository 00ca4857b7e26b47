package systems

import (
	"github.com/lixenwraith/humblebee/components"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// PlayerSystem advances the bee every tick in every phase.
// Physics only applies while flying; the animation runs in Idle too and
// freezes in GameOver
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (ps *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

func (ps *PlayerSystem) Phases() engine.PhaseMask {
	return engine.MaskAll
}

func (ps *PlayerSystem) Update(w *engine.World) {
	phase := w.Phase()
	fx := w.Player.Advance(components.PlayerInput{
		Flying: phase == engine.PhaseFlying,
		Fallen: phase == engine.PhaseGameOver,
		Held:   w.Input.Held,
	})

	if fx.Flapped {
		w.QueueCue(engine.CueFlap)
	}
}
