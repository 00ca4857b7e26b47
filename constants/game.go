package constants

import "time"

// Spawn Timing
const (
	// SpawnInterval is the time between obstacle pairs while flying
	SpawnInterval = 1500 * time.Millisecond

	// SpawnIntervalTicks is SpawnInterval expressed in ticks (90 at 60 Hz)
	SpawnIntervalTicks = uint64(SpawnInterval * TickRate / time.Second)

	// SpawnOffsetMin and SpawnOffsetMax bound the vertical gap offset (inclusive)
	SpawnOffsetMin = -100
	SpawnOffsetMax = 100
)

// Obstacle Geometry
const (
	// PipeGap is the vertical opening between the top and bottom barrier
	PipeGap = 150.0

	// PipeWidth and PipeHeight are the barrier sprite extents in playfield units
	PipeWidth  = 78.0
	PipeHeight = 560.0
)

// Scrolling
const (
	// ScrollSpeed is the leftward obstacle and ground motion per tick
	ScrollSpeed = 4.0

	// GroundTileWidth is the wrap length of the ground scroll offset
	GroundTileWidth = 35.0
)
