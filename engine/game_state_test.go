package engine

import (
	"testing"
)

// TestCanTransition tests the phase transition validation logic
func TestCanTransition(t *testing.T) {
	valid := []struct {
		from, to GamePhase
	}{
		{PhaseIdle, PhaseFlying},
		{PhaseFlying, PhaseGameOver},
		{PhaseGameOver, PhaseFlying},
	}
	for _, tc := range valid {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be valid, but it was rejected", tc.from, tc.to)
		}
	}

	invalid := []struct {
		from GamePhase
		to   GamePhase
		desc string
	}{
		{PhaseIdle, PhaseGameOver, "Idle -> GameOver (must fly first)"},
		{PhaseFlying, PhaseIdle, "Flying -> Idle (Idle is only initial)"},
		{PhaseGameOver, PhaseIdle, "GameOver -> Idle (restart goes straight to Flying)"},
		{PhaseFlying, PhaseFlying, "Flying -> Flying (no self loop)"},
		{PhaseGameOver, PhaseGameOver, "GameOver -> GameOver (no self loop)"},
	}
	for _, tc := range invalid {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be invalid, but it was allowed (%s)", tc.from, tc.to, tc.desc)
		}
	}
}

func TestPhaseMask(t *testing.T) {
	if !MaskFlying.Has(PhaseFlying) {
		t.Error("MaskFlying must include Flying")
	}
	if MaskFlying.Has(PhaseIdle) || MaskFlying.Has(PhaseGameOver) {
		t.Error("MaskFlying must exclude Idle and GameOver")
	}
	for _, p := range []GamePhase{PhaseIdle, PhaseFlying, PhaseGameOver} {
		if !MaskAll.Has(p) {
			t.Errorf("MaskAll must include %s", p)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[GamePhase]string{
		PhaseIdle:     "Idle",
		PhaseFlying:   "Flying",
		PhaseGameOver: "GameOver",
		GamePhase(42): "Unknown",
	}
	for phase, want := range tests {
		if got := phase.String(); got != want {
			t.Errorf("GamePhase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
