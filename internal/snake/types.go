package snake

import "fmt"

// Cell is a pair of grid coordinates, one unit per board cell.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	panic(fmt.Sprintf("snake: unknown direction %d", int(d)))
}

// Unit returns the one-cell step for the direction. Grid y grows downward.
func (d Direction) Unit() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	case DirRight:
		return Cell{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("snake: unknown direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// GameState is the engine's state machine position.
type GameState int

const (
	StateRunning GameState = iota
	StatePaused
	StateOver
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// TickOutcome reports what a tick pass did.
type TickOutcome int

const (
	TickIdle     TickOutcome = iota // not running, nothing moved
	TickMoved                       // head advanced, tail dropped
	TickAte                         // head advanced onto food, snake grew
	TickCollided                    // boundary or self collision, game over
)

func (o TickOutcome) String() string {
	switch o {
	case TickIdle:
		return "idle"
	case TickMoved:
		return "moved"
	case TickAte:
		return "ate"
	case TickCollided:
		return "collided"
	default:
		return "unknown"
	}
}
