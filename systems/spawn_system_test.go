package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

func TestMaybeSpawnStrictInterval(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		now  uint64
		last uint64
		want bool
	}{
		{"Before interval", 50, 0, false},
		{"Exactly interval", 90, 0, false},
		{"Past interval", 91, 0, true},
		{"Wrapped last", 1, ^uint64(0) - 89, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := s.MaybeSpawn(tt.now, tt.last, constants.SpawnIntervalTicks)
			assert.Equal(t, tt.want, ok)
			if ok {
				require.NotNil(t, pair)
				assert.Equal(t, constants.ScreenWidth, pair.X)
			}
		})
	}
}

func TestSpawnerOffsetsInRange(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(7)))
	seenMin, seenMax := false, false

	for i := 0; i < 20000; i++ {
		pair, ok := s.MaybeSpawn(100, 0, 1)
		require.True(t, ok)
		assert.GreaterOrEqual(t, pair.Offset, float64(constants.SpawnOffsetMin))
		assert.LessOrEqual(t, pair.Offset, float64(constants.SpawnOffsetMax))
		assert.Equal(t, constants.PipeGap, pair.Bottom().Top()-pair.Top().Bottom())

		seenMin = seenMin || pair.Offset == constants.SpawnOffsetMin
		seenMax = seenMax || pair.Offset == constants.SpawnOffsetMax
	}
	assert.True(t, seenMin && seenMax, "both range bounds must be reachable")
}

func TestSpawnerSeedReproducible(t *testing.T) {
	a := NewSpawner(rand.New(rand.NewSource(42)))
	b := NewSpawner(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		pa, _ := a.MaybeSpawn(1000, 0, 1)
		pb, _ := b.MaybeSpawn(1000, 0, 1)
		assert.Equal(t, pa.Offset, pb.Offset)
	}
}

// Scenario D: 1500ms at 60Hz is 90 ticks; the next pair comes on the tick after
func TestSpawnSystemInterval(t *testing.T) {
	g := newTestGame(1)
	g.Step(press)
	w := g.World()
	require.Equal(t, engine.PhaseFlying, w.Phase())
	assert.Empty(t, w.Obstacles, "no pair on the start tick")

	// Still held, so no second jump
	g.Step(press)
	require.Len(t, w.Obstacles, 1, "first pair spawns on the tick after start")
	firstSpawn := w.LastSpawnTick

	for w.Tick-firstSpawn < constants.SpawnIntervalTicks {
		hover(g, 1, constants.SpawnY)
		require.Equal(t, engine.PhaseFlying, w.Phase())
		require.Len(t, w.Obstacles, 1, "no second pair before the interval elapses (tick %d)", w.Tick)
	}

	hover(g, 1, constants.SpawnY)
	assert.Len(t, w.Obstacles, 2)
	assert.Equal(t, firstSpawn+constants.SpawnIntervalTicks+1, w.LastSpawnTick)
}

func TestSpawnSystemIdleAndGameOver(t *testing.T) {
	g := newTestGame(1)
	stepIdle(g, 500)
	assert.Empty(t, g.World().Obstacles, "Idle never spawns")

	w := g.World()
	w.TransitionPhase(engine.PhaseFlying)
	w.TransitionPhase(engine.PhaseGameOver)
	stepIdle(g, 500)
	assert.Empty(t, w.Obstacles, "GameOver never spawns")
}
