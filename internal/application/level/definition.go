package level

import (
	"errors"
	"fmt"

	"github.com/younwookim/skyfall/internal/application/system"
)

// Errors returned when a level cannot be built
var (
	ErrUnknownLevel   = errors.New("unknown level")
	ErrMissingModel   = errors.New("missing model")
	ErrNoPlayerHitbox = errors.New("player model has no PLAYER_ hitboxes")
	ErrMissingConfig  = errors.New("missing combat config")
)

// PlayerModel is the asset name of the player's geometry
const PlayerModel = "player"

// Definition describes one level of the campaign
type Definition struct {
	Number     int
	Name       string
	Strategy   system.CollisionStrategy
	MaxWaves   int
	EnemyModel string
	NewScript  func(maxWaves int) system.LevelScript
}

// Definitions returns the five levels in play order
func Definitions() []Definition {
	return []Definition{
		{
			Number: 1, Name: "Formation", Strategy: system.CollisionExternal,
			MaxWaves: system.DefaultWaveCount, EnemyModel: "fighter",
			NewScript: func(n int) system.LevelScript { return &system.WaveScript{MaxWaves: n, Curved: true} },
		},
		{
			Number: 2, Name: "Bomber", Strategy: system.CollisionInline,
			MaxWaves: 1, EnemyModel: "bomber",
			NewScript: func(int) system.LevelScript { return system.NewBomberScript() },
		},
		{
			Number: 3, Name: "Zigzag", Strategy: system.CollisionExternal,
			MaxWaves: system.DefaultZigzagCount, EnemyModel: "fighter",
			NewScript: func(n int) system.LevelScript { return &system.ZigzagScript{MaxWaves: n} },
		},
		{
			Number: 4, Name: "Guardian", Strategy: system.CollisionExternal,
			MaxWaves: 1, EnemyModel: "boss",
			NewScript: func(int) system.LevelScript { return system.NewBossScript() },
		},
		{
			Number: 5, Name: "Overlord", Strategy: system.CollisionExternal,
			MaxWaves: 1, EnemyModel: "final",
			NewScript: func(int) system.LevelScript { return system.NewFinalBossScript() },
		},
	}
}

// Lookup returns the definition for level n, counting from 1
func Lookup(n int) (Definition, error) {
	defs := Definitions()
	if n < 1 || n > len(defs) {
		return Definition{}, fmt.Errorf("level %d: %w", n, ErrUnknownLevel)
	}
	return defs[n-1], nil
}

// Count returns the number of levels
func Count() int {
	return len(Definitions())
}
