package systems

import (
	"math/rand"

	"github.com/lixenwraith/humblebee/engine"
	"github.com/lixenwraith/humblebee/input"
)

// newTestGame builds a game with the default rules and a seeded spawner
func newTestGame(seed int64) *engine.Game {
	return engine.NewGame(engine.NewWorld("test"), Default(rand.New(rand.NewSource(seed)))...)
}

var (
	// press is a frame with a down edge
	press   = input.Frame{Held: true, Pressed: true}
	noInput = input.Frame{}
)

// stepIdle runs n ticks with no input
func stepIdle(g *engine.Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(input.Frame{})
	}
}

// stepUntil runs ticks with no input until cond holds or limit is reached.
// Returns the number of ticks run
func stepUntil(g *engine.Game, limit int, cond func(w *engine.World) bool) int {
	for i := 1; i <= limit; i++ {
		g.Step(input.Frame{})
		if cond(g.World()) {
			return i
		}
	}
	return limit
}

// hover keeps the player near y by pressing whenever it sinks below it.
// Stops early if the flight ends so it never issues a restart press
func hover(g *engine.Game, ticks int, y float64) {
	for i := 0; i < ticks; i++ {
		w := g.World()
		if w.Phase() != engine.PhaseFlying {
			return
		}
		if w.Player.Y > y && w.Player.Velocity >= 0 && !w.Player.Clicked {
			g.Step(press)
			continue
		}
		g.Step(input.Frame{})
	}
}
