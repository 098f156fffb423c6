package core

// RuntimeConfig contains configuration passed to the front ends at start-up.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic matches
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means the CLI seeds from the current time
	}
}
