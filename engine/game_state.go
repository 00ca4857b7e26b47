package engine

// GamePhase is the state machine value gating which systems run
type GamePhase int

const (
	// PhaseIdle waits for the first press, nothing moves
	PhaseIdle GamePhase = iota
	// PhaseFlying runs the full simulation
	PhaseFlying
	// PhaseGameOver freezes the world until a restart press
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseFlying:
		return "Flying"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Mask returns the phase as a PhaseMask bit
func (p GamePhase) Mask() PhaseMask {
	return PhaseMask(1) << uint(p)
}

// PhaseMask is a set of phases a system is active in
type PhaseMask uint8

const (
	MaskFlying = PhaseMask(1) << uint(PhaseFlying)
	MaskAll    = PhaseMask(1)<<uint(PhaseIdle) | MaskFlying | PhaseMask(1)<<uint(PhaseGameOver)
)

// Has reports whether the mask includes the phase
func (m PhaseMask) Has(p GamePhase) bool {
	return m&p.Mask() != 0
}

// validTransitions lists the allowed phase edges
// GameOver -> Flying is the restart path; Idle is never re-entered
var validTransitions = map[GamePhase][]GamePhase{
	PhaseIdle:     {PhaseFlying},
	PhaseFlying:   {PhaseGameOver},
	PhaseGameOver: {PhaseFlying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// PhaseSnapshot provides a consistent view of phase state
type PhaseSnapshot struct {
	Phase     GamePhase
	StartTick uint64
	Duration  uint64 // ticks in the current phase
}
