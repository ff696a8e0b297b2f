package core

// RuntimeConfig contains host settings passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  96,
		ScreenH:  34,
		TickRate: 60,
	}
}

// Outcome is the terminal result of a game.
type Outcome int

const (
	OutcomeNone Outcome = iota // Game still running or not started
	OutcomeWin                 // Every brick destroyed
	OutcomeLose                // Lives exhausted
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// GameState is a summary of the game handed to the platform each frame.
type GameState struct {
	Score   int     // Bricks destroyed
	Lives   int     // Lives remaining
	Running bool    // Whether the loop is scheduling frames
	Outcome Outcome // Set once the game has ended
}
