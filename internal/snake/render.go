package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// OpKind identifies a draw primitive.
type OpKind int

const (
	OpFillRect     OpKind = iota // filled rectangle
	OpText                       // text with its baseline starting at (Rect.X, Rect.Y)
	OpTextCentered               // text centred within Rect
)

// Font names a typeface and point size for text primitives.
type Font struct {
	Family string
	Size   int
}

// Fonts used by the board.
var (
	FontScore  = Font{Family: "Decorative", Size: 10}
	FontBanner = Font{Family: "Decorative", Size: 10}
	FontHint   = Font{Family: "Decorative", Size: 8}
)

// Board palette.
const (
	ColorBackground = core.ColorMint
	ColorScoreboard = core.ColorDarkGreen
	ColorFood       = core.ColorGreen
	ColorSnake      = core.ColorOrange
	ColorScoreText  = core.ColorBrightWhite
	ColorBanner     = core.ColorForest
)

// Fixed text positions in board pixels.
const (
	scoreX     = 8
	highScoreX = 200
	scoreY     = 17
	hintX      = 90
	hintY      = 170

	BannerText = "GAME OVER"
	HintText   = "press space to play again"
)

// DrawOp is one draw primitive in board pixels.
type DrawOp struct {
	Kind  OpKind
	Rect  core.Rect // area for fills and centred text; origin for plain text
	Text  string
	Font  Font
	Color core.Color
}

// Render projects the current state into draw operations in painter's order:
// scoreboard strip, food, snake, score texts and, when the game is over, the
// banner and restart hint. It never mutates the game.
func (g *Game) Render() []DrawOp {
	ops := make([]DrawOp, 0, len(g.snake)+6)

	ops = append(ops, DrawOp{
		Kind:  OpFillRect,
		Rect:  core.NewRect(0, 0, g.board.Width, g.board.ScoreboardHeight),
		Color: ColorScoreboard,
	})

	if g.foodPlaced {
		ops = append(ops, DrawOp{
			Kind:  OpFillRect,
			Rect:  g.board.CellRect(g.food),
			Color: ColorFood,
		})
	}

	for _, seg := range g.snake {
		ops = append(ops, DrawOp{
			Kind:  OpFillRect,
			Rect:  g.board.CellRect(seg),
			Color: ColorSnake,
		})
	}

	ops = append(ops,
		textOp(scoreX, scoreY, fmt.Sprintf("SCORE: %d", g.score), FontScore, ColorScoreText),
		textOp(highScoreX, scoreY, fmt.Sprintf("HIGHSCORE: %d", g.highScore), FontScore, ColorScoreText),
	)

	if g.state == StateOver {
		ops = append(ops,
			DrawOp{
				Kind:  OpTextCentered,
				Rect:  g.board.Bounds(),
				Text:  BannerText,
				Font:  FontBanner,
				Color: ColorBanner,
			},
			textOp(hintX, hintY, HintText, FontHint, ColorBanner),
		)
	}

	return ops
}

func textOp(x, y int, text string, font Font, c core.Color) DrawOp {
	return DrawOp{
		Kind:  OpText,
		Rect:  core.NewRect(x, y, 0, 0),
		Text:  text,
		Font:  font,
		Color: c,
	}
}
