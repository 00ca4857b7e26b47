package constants

import "time"

// Game Loop Timing
// Physics values below are per-tick increments tuned to TickRate; changing the
// rate changes how the game plays
const (
	// TickRate is the fixed simulation and render rate in Hz
	TickRate = 60

	// TickInterval is the wall-clock budget of one tick (~16.6ms)
	TickInterval = time.Second / TickRate

	// InputQueueSize is the capacity of the terminal event channel between the poller and the loop
	InputQueueSize = 256
)

// TicksFor converts a wall-clock duration into whole ticks at TickRate
func TicksFor(d time.Duration) uint64 {
	return uint64(d * TickRate / time.Second)
}
