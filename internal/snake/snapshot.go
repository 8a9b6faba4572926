package snake

// State labels the current phase of the game.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
	StateTooSmall State = "too_small"
)

// Snapshot captures the observable game state for determinism checks.
type Snapshot struct {
	Tick       uint64
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        string
	FoodX      int
	FoodY      int
	IntervalMS int
	State      State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		SnakeLen:   len(g.snake),
		HeadX:      headX,
		HeadY:      headY,
		Dir:        g.dir.String(),
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		IntervalMS: int(g.TickInterval().Milliseconds()),
		State:      state,
	}
}
