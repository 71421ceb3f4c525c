package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Reference board geometry in board pixels.
const (
	BoardWidth       = 300
	BoardHeight      = 300
	CellSize         = 12 // one grid unit
	ScoreboardHeight = 24 // two cell rows reserved for the score strip
)

// ErrInvalidBoard is returned by Board.Validate for unusable geometry.
var ErrInvalidBoard = errors.New("snake: invalid board")

// Board describes the board geometry. All values are in board pixels.
type Board struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	CellSize         int `yaml:"cell_size"`
	ScoreboardHeight int `yaml:"scoreboard_height"`
}

// DefaultBoard returns the 300x300 reference board with 12 px cells.
func DefaultBoard() Board {
	return Board{
		Width:            BoardWidth,
		Height:           BoardHeight,
		CellSize:         CellSize,
		ScoreboardHeight: ScoreboardHeight,
	}
}

// Validate reports whether the board can host a game.
func (b Board) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.CellSize <= 0 {
		return fmt.Errorf("%w: width, height and cell size must be positive", ErrInvalidBoard)
	}
	if b.ScoreboardHeight < 0 || b.ScoreboardHeight >= b.Height {
		return fmt.Errorf("%w: scoreboard height %d does not fit board height %d",
			ErrInvalidBoard, b.ScoreboardHeight, b.Height)
	}
	if b.Cols() < 2 || b.Rows()-b.TopRow() < 2 {
		return fmt.Errorf("%w: fewer than 2x2 playable cells", ErrInvalidBoard)
	}
	return nil
}

// Cols returns the number of grid columns.
func (b Board) Cols() int {
	return b.Width / b.CellSize
}

// Rows returns the number of grid rows, scoreboard rows included.
func (b Board) Rows() int {
	return b.Height / b.CellSize
}

// TopRow returns the first playable row below the scoreboard strip.
func (b Board) TopRow() int {
	return core.CeilDiv(b.ScoreboardHeight, b.CellSize)
}

// MaxX returns the last playable column.
func (b Board) MaxX() int {
	return b.Cols() - 1
}

// MaxY returns the last playable row.
func (b Board) MaxY() int {
	return b.Rows() - 1
}

// PlayArea returns the playable grid as a rectangle in grid units.
func (b Board) PlayArea() core.Rect {
	return core.NewRect(0, b.TopRow(), b.Cols(), b.Rows()-b.TopRow())
}

// Playable reports whether c lies inside the playable grid.
func (b Board) Playable(c Cell) bool {
	return b.PlayArea().Contains(c.X, c.Y)
}

// PlayableCells returns the number of playable cells.
func (b Board) PlayableCells() int {
	area := b.PlayArea()
	return area.W * area.H
}

// CellRect returns the pixel rectangle covered by a grid cell.
func (b Board) CellRect(c Cell) core.Rect {
	return core.NewRect(c.X*b.CellSize, c.Y*b.CellSize, b.CellSize, b.CellSize)
}

// Bounds returns the full board rectangle in pixels.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.Width, b.Height)
}
