package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/humblebee/components"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/input"
)

func TestNewWorldStartsIdle(t *testing.T) {
	w := NewWorld("session")

	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Empty(t, w.Obstacles)
	assert.Zero(t, w.Score)
	assert.Zero(t, w.HighScore)
	assert.Equal(t, constants.SpawnY, w.Player.Y)
}

func TestTransitionPhaseRejectsInvalid(t *testing.T) {
	w := NewWorld("session")

	assert.False(t, w.TransitionPhase(PhaseGameOver))
	assert.Equal(t, PhaseIdle, w.Phase())
	assert.Empty(t, w.DrainCues(), "rejected transition must not run entry actions")
}

func TestEnterFlyingArmsSpawner(t *testing.T) {
	w := NewWorld("session")
	w.Tick = 5

	require.True(t, w.TransitionPhase(PhaseFlying))
	assert.Equal(t, constants.SpawnIntervalTicks, w.Tick-w.LastSpawnTick)
	assert.Equal(t, 1, w.Attempt)

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventGameStarted, events[0].Type)
	assert.Equal(t, "session", events[0].SessionID)
}

func TestEnterGameOverQueuesCrashOnce(t *testing.T) {
	w := NewWorld("session")
	require.True(t, w.TransitionPhase(PhaseFlying))
	w.DrainEvents()

	require.True(t, w.TransitionPhase(PhaseGameOver))
	assert.False(t, w.TransitionPhase(PhaseGameOver))

	assert.Equal(t, []Cue{CueCrash}, w.DrainCues())
	assert.Empty(t, w.DrainCues())

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventGameOver, events[0].Type)
}

func TestRestartResetsRound(t *testing.T) {
	w := NewWorld("session")
	require.True(t, w.TransitionPhase(PhaseFlying))

	w.Obstacles = append(w.Obstacles,
		components.NewObstaclePair(300, 10),
		components.NewObstaclePair(600, -40),
	)
	w.Player.Y = 700
	w.Player.Velocity = 8
	w.AddScore(1)
	w.AddScore(1)

	require.True(t, w.TransitionPhase(PhaseGameOver))
	w.Input = input.Frame{Held: true, Pressed: true}
	require.True(t, w.TransitionPhase(PhaseFlying))

	assert.Empty(t, w.Obstacles)
	assert.Equal(t, constants.SpawnX, w.Player.X)
	assert.Equal(t, constants.SpawnY, w.Player.Y)
	assert.Zero(t, w.Player.Velocity)
	assert.True(t, w.Player.Clicked, "held restart press must be debounced")
	assert.Zero(t, w.Score)
	assert.Equal(t, 2, w.HighScore)
	assert.Equal(t, 2, w.Attempt)
}

func TestAddScoreRaisesHighScore(t *testing.T) {
	w := NewWorld("session")
	w.HighScore = 3

	w.AddScore(1)
	assert.Equal(t, 1, w.Score)
	assert.Equal(t, 3, w.HighScore)

	w.Score = 3
	w.AddScore(1)
	assert.Equal(t, 4, w.HighScore)

	events := w.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventPairCleared, events[1].Type)
	assert.Equal(t, 4, events[1].Score)
}

func TestReadPhaseState(t *testing.T) {
	w := NewWorld("session")
	w.Tick = 10
	w.TransitionPhase(PhaseFlying)
	w.Tick = 25

	snap := w.ReadPhaseState()
	assert.Equal(t, PhaseFlying, snap.Phase)
	assert.Equal(t, uint64(10), snap.StartTick)
	assert.Equal(t, uint64(15), snap.Duration)
}

func TestCueAssetNames(t *testing.T) {
	assert.Equal(t, "flap", CueFlap.AssetName())
	assert.Equal(t, "crash", CueCrash.AssetName())
	assert.Equal(t, "gameover", EventGameOver.String())
}
