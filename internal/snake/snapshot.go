package snake

// Snapshot captures the game state for determinism testing and debug logs.
type Snapshot struct {
	Tick       uint64
	State      GameState
	Score      int
	HighScore  int
	SnakeLen   int
	Head       Cell
	Dir        Direction
	Food       Cell
	FoodPlaced bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head Cell
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		HighScore:  g.highScore,
		SnakeLen:   len(g.snake),
		Head:       head,
		Dir:        g.nextDir,
		Food:       g.food,
		FoodPlaced: g.foodPlaced,
	}
}
