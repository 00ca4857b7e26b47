package render

import (
	"github.com/lixenwraith/humblebee/engine"
)

// RenderContext provides frame state for renderers, passed by value.
// Renderers read World and must never modify it
type RenderContext struct {
	World *engine.World
	Phase engine.PhaseSnapshot
	View  Viewport
}

// NewRenderContext snapshots the phase and pairs it with the viewport
func NewRenderContext(w *engine.World, view Viewport) RenderContext {
	return RenderContext{
		World: w,
		Phase: w.ReadPhaseState(),
		View:  view,
	}
}
