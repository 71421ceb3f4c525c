// Package snake implements the Snake game engine: a state machine gating
// ticks and key symbols, the movement and collision rules, food placement and
// a render adapter that projects the state into draw operations.
//
// The engine never blocks and owns no timers. A host calls OnTick at a fixed
// period while ClockRunning reports true, forwards key symbols to OnKey and
// draws the result of Render.
package snake

import (
	"errors"
	"math/rand"
	"time"
)

// initialLength is the number of cells in a freshly spawned snake.
const initialLength = 3

// Source is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Options configures a Game. The zero value is usable.
type Options struct {
	Board Board
	Seed  int64 // 0 means seed from the current time
	Rand  Source

	// FoodRetryLimit caps rejection sampling before falling back to a
	// row-major scan for a free cell. 0 means unbounded sampling.
	FoodRetryLimit int

	// NewGameWhilePaused lets the new-game symbol reset a paused game.
	NewGameWhilePaused bool
}

// Game implements the Snake game engine.
type Game struct {
	board Board
	rng   Source
	opts  Options

	round     uint64
	tick      uint64
	score     int
	highScore int
	state     GameState

	snake     []Cell    // head at index 0
	direction Direction // heading of the last move
	nextDir   Direction // heading for the next move

	food       Cell
	foodPlaced bool

	clockRunning  bool
	quitRequested bool
}

// New creates a game and starts the first round.
// A zero Board in opts selects DefaultBoard.
func New(opts Options) *Game {
	if opts.Board == (Board{}) {
		opts.Board = DefaultBoard()
	}
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		board: opts.Board,
		rng:   rng,
		opts:  opts,
	}
	g.NewGame()
	return g
}

// NewGame resets the round: a 3-cell snake heading right, score 0, fresh
// food, state Running and the clock restarted. The high score survives.
func (g *Game) NewGame() {
	g.highScore = max(g.highScore, g.score)
	g.round++
	g.score = 0
	g.tick = 0
	g.state = StateRunning
	g.direction = DirRight
	g.nextDir = DirRight
	g.foodPlaced = false
	g.food = Cell{}
	g.quitRequested = false

	row := g.board.TopRow() + 1
	g.snake = make([]Cell, 0, initialLength)
	for i := range initialLength {
		g.snake = append(g.snake, Cell{X: 1 - i, Y: row})
	}

	// A board with no room for food is caught by the first tick pass.
	_ = g.EnsureFoodPlaced()
	g.clockRunning = true
}

// OnTick runs one tick pass: advance the snake, then place food if needed.
// Ticks while Paused or Over do nothing. A snake that fills the board leaves
// no cell for food and ends the round like a collision.
func (g *Game) OnTick() TickOutcome {
	if g.state != StateRunning {
		return TickIdle
	}
	g.tick++

	scoreBefore := g.score
	if !g.Advance() {
		return TickCollided
	}

	if err := g.EnsureFoodPlaced(); errors.Is(err, ErrBoardFull) {
		g.endGame()
		return TickCollided
	}

	if g.score > scoreBefore {
		return TickAte
	}
	return TickMoved
}

// moveStatus is the verdict of checkStatus for a candidate head.
type moveStatus int

const (
	moveCollide moveStatus = iota
	moveGrow
	moveShift
)

// Advance applies the buffered heading and moves the snake one cell.
// Returns false if the move collided and the game ended.
func (g *Game) Advance() bool {
	if g.state != StateRunning || len(g.snake) == 0 {
		return false
	}
	g.direction = g.nextDir

	candidate := g.snake[0].Add(g.direction.Unit())

	switch g.checkStatus(candidate) {
	case moveCollide:
		g.endGame()
		return false
	case moveGrow:
		// Tail stays: the snake grows by one.
	case moveShift:
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = candidate
	return true
}

// checkStatus classifies a candidate head cell. Eating food updates the score
// and unplaces the food as a side effect.
func (g *Game) checkStatus(candidate Cell) moveStatus {
	if !g.board.Playable(candidate) || g.occupies(candidate) {
		return moveCollide
	}
	if g.foodPlaced && candidate == g.food {
		g.foodPlaced = false
		g.score++
		return moveGrow
	}
	return moveShift
}

// endGame transitions to Over and stops the clock.
func (g *Game) endGame() {
	g.state = StateOver
	g.clockRunning = false
	g.highScore = max(g.highScore, g.score)
}

// occupies checks if the snake covers the given cell.
func (g *Game) occupies(c Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// State returns the current state machine position.
func (g *Game) State() GameState {
	return g.state
}

// Score returns the current round's score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen by this process.
func (g *Game) HighScore() int {
	return g.highScore
}

// Round returns the number of rounds started, the current one included.
func (g *Game) Round() uint64 {
	return g.round
}

// Ticks returns the number of tick passes run in the current round.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Direction returns the heading the next move will take.
func (g *Game) Direction() Direction {
	return g.nextDir
}

// Snake returns a copy of the snake cells, head first.
func (g *Game) Snake() []Cell {
	out := make([]Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Food returns the food cell and whether it is placed.
func (g *Game) Food() (Cell, bool) {
	return g.food, g.foodPlaced
}

// Board returns the board geometry.
func (g *Game) Board() Board {
	return g.board
}

// ClockRunning reports whether the host should keep delivering ticks.
func (g *Game) ClockRunning() bool {
	return g.clockRunning
}

// QuitRequested reports whether the quit symbol was received.
func (g *Game) QuitRequested() bool {
	return g.quitRequested
}
