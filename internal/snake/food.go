package snake

import "errors"

// ErrBoardFull is returned when no playable cell is free for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// EnsureFoodPlaced places food on a random free playable cell if none is
// placed. Candidates are drawn uniformly and rejected while they land on the
// snake.
func (g *Game) EnsureFoodPlaced() error {
	if g.foodPlaced {
		return nil
	}
	if g.occupiedPlayable() >= g.board.PlayableCells() {
		return ErrBoardFull
	}

	limit := g.opts.FoodRetryLimit
	for attempt := 0; limit <= 0 || attempt < limit; attempt++ {
		c := g.randomCell()
		if !g.occupies(c) {
			g.placeFood(c)
			return nil
		}
	}

	// Sampling kept hitting the snake: take the first free cell instead.
	for y := g.board.TopRow(); y <= g.board.MaxY(); y++ {
		for x := 0; x <= g.board.MaxX(); x++ {
			c := Cell{X: x, Y: y}
			if !g.occupies(c) {
				g.placeFood(c)
				return nil
			}
		}
	}
	return ErrBoardFull
}

// randomCell draws a uniformly random playable cell.
func (g *Game) randomCell() Cell {
	top := g.board.TopRow()
	return Cell{
		X: g.rng.Intn(g.board.Cols()),
		Y: top + g.rng.Intn(g.board.Rows()-top),
	}
}

func (g *Game) placeFood(c Cell) {
	g.food = c
	g.foodPlaced = true
}

// occupiedPlayable counts distinct snake cells inside the playable grid.
func (g *Game) occupiedPlayable() int {
	seen := make(map[Cell]struct{}, len(g.snake))
	for _, c := range g.snake {
		if g.board.Playable(c) {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}
