// Package config provides YAML-based configuration for the game: spawn
// probabilities, the win tile, and animation timing.
package config

// GameConfig contains all tunable game parameters.
type GameConfig struct {
	Spawn     SpawnConfig     `yaml:"spawn"`
	Win       WinConfig       `yaml:"win"`
	Animation AnimationConfig `yaml:"animation"`
}

// SpawnConfig controls new-tile spawning.
type SpawnConfig struct {
	// FourProbability is the chance a spawned tile is a 4 instead of a 2.
	FourProbability float64 `yaml:"four_probability"`
}

// WinConfig controls win detection.
type WinConfig struct {
	// Tile is the value that triggers the win banner. 0 disables it.
	Tile int `yaml:"tile"`
}

// AnimationConfig controls post-move animation timing in ticks.
type AnimationConfig struct {
	// PopTicks is how long the new-tile pop lasts; input is gated while
	// the animation runs.
	PopTicks int `yaml:"pop_ticks"`
}

// Default returns the default game configuration.
func Default() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Win: WinConfig{
			Tile: 2048,
		},
		Animation: AnimationConfig{
			PopTicks: 6,
		},
	}
}
