package systems

import (
	"math/rand"

	"github.com/lixenwraith/humblebee/components"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// Spawner decides when an obstacle pair is due and builds it.
// The random source is injected so spawn sequences are reproducible
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing gap offsets from rng
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// MaybeSpawn returns a new pair at the right edge once more than interval
// ticks have passed since last. Tick arithmetic is modular
func (s *Spawner) MaybeSpawn(now, last, interval uint64) (*components.ObstaclePair, bool) {
	if now-last <= interval {
		return nil, false
	}
	return components.NewObstaclePair(constants.ScreenWidth, s.offset()), true
}

// offset draws uniformly from [SpawnOffsetMin, SpawnOffsetMax]
func (s *Spawner) offset() float64 {
	span := constants.SpawnOffsetMax - constants.SpawnOffsetMin + 1
	return float64(constants.SpawnOffsetMin + s.rng.Intn(span))
}

// SpawnSystem adds obstacle pairs on the spawn interval while flying
type SpawnSystem struct {
	spawner  *Spawner
	interval uint64
}

// NewSpawnSystem creates a spawn system with the default interval
func NewSpawnSystem(spawner *Spawner) *SpawnSystem {
	return &SpawnSystem{
		spawner:  spawner,
		interval: constants.SpawnIntervalTicks,
	}
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (s *SpawnSystem) Phases() engine.PhaseMask {
	return engine.MaskFlying
}

func (s *SpawnSystem) Update(w *engine.World) {
	pair, ok := s.spawner.MaybeSpawn(w.Tick, w.LastSpawnTick, s.interval)
	if !ok {
		return
	}
	w.Obstacles = append(w.Obstacles, pair)
	w.LastSpawnTick = w.Tick
}
