package core

// RuntimeConfig contains the parameters the platform hands the game at
// initialization: screen dimensions and the RNG seed for deterministic play.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks a time-based seed
}

// Status reports the game's externally visible state after a tick.
type Status struct {
	Score    int  // Current score
	GameOver bool // Whether a fatal collision has ended the run
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	Status Status
}
