package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its drawing surface.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second (input polling and redraw cap)
	Player   string // Name recorded with finished runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Player:   "local",
	}
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Running    bool // Whether generations are advancing
	Generation int  // Generations computed in the current run
	Population int  // Live cells
	BlockSize  int  // Current zoom level
	StableAt   int  // First generation that changed nothing, 0 if none yet
}

// RunReport describes a finished run, ready to be stored.
type RunReport struct {
	Player            string
	InitialPopulation int
	Generations       int
	PeakPopulation    int
	FinalPopulation   int
	Births            int
	Deaths            int
	StableAt          int // 0 if the pattern never settled
	Duration          time.Duration
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// Finished is set on the frame a run ended, nil otherwise.
	Finished *RunReport
}
