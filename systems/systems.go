// Package systems holds the per-tick game rules run by engine.Game
package systems

import (
	"math/rand"

	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
)

// Default returns the full rule set at the standard scroll speed
func Default(rng *rand.Rand) []engine.System {
	return []engine.System{
		NewPlayerSystem(),
		NewSpawnSystem(NewSpawner(rng)),
		NewObstacleSystem(constants.ScrollSpeed),
		NewGroundSystem(constants.ScrollSpeed),
		NewCollisionSystem(),
		NewScoreSystem(),
	}
}
