package engine

import (
	"sort"

	"github.com/lixenwraith/humblebee/input"
)

// System is a per-tick subsystem driven by Game
type System interface {
	// Priority orders systems, lower runs first
	Priority() int
	// Phases is the set of phases the system runs in
	Phases() PhaseMask
	// Update advances the system by one tick
	Update(w *World)
}

// Game is the state machine: it applies input-driven phase transitions and
// then runs every system active in the phase current at its turn.
// A system that changes phase (collision) therefore gates the systems after it
type Game struct {
	world   *World
	systems []System
}

// NewGame creates a game over the world with the given systems
func NewGame(world *World, systems ...System) *Game {
	g := &Game{world: world}
	for _, s := range systems {
		g.AddSystem(s)
	}
	return g
}

// AddSystem registers a system, keeping priority order stable
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// World returns the owned world
func (g *Game) World() *World {
	return g.world
}

// Step runs one tick with the given input frame
func (g *Game) Step(frame input.Frame) {
	w := g.world
	w.Tick++
	w.Input = frame

	// Idle -> Flying starts the game, GameOver -> Flying restarts it
	if frame.Pressed && w.Phase() != PhaseFlying {
		w.TransitionPhase(PhaseFlying)
	}

	for _, s := range g.systems {
		if s.Phases().Has(w.Phase()) {
			s.Update(w)
		}
	}
}
