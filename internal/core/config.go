package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Moves     int  // Reveals made so far
	Remaining int  // Safe cells still hidden
	GameOver  bool // Game has ended, won or lost
	Won       bool // Game ended with every safe cell revealed
}

// StepResult is returned by Game.Step after each input.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board changed this step
}
