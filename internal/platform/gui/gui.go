//go:build ebiten

package gui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Window adapts a snake session to the ebiten.Game interface.
type Window struct {
	session *session.Session
	game    *snake.Game
	clock   frameClock
	keys    []boundKey
	pixel   *ebiten.Image
	quit    bool
}

// NewWindow constructs a Window and starts the first round.
func NewWindow(opts Options) *Window {
	game := snake.New(opts.Config.GameOptions())
	s := session.New(game, opts.Store, opts.Logger, nil)

	keys, skipped := bindKeys(opts.Config.Keys)
	if len(skipped) > 0 && opts.Logger != nil {
		opts.Logger.Warn("keys not available in the window", "keys", skipped)
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &Window{
		session: s,
		game:    game,
		clock:   newFrameClock(opts.Config.TickInterval(), TPS),
		keys:    keys,
		pixel:   pixel,
	}
}

// Update handles input and advances the game when a tick is due.
func (w *Window) Update() error {
	for _, bk := range w.keys {
		if !inpututil.IsKeyJustPressed(bk.key) {
			continue
		}
		if w.session.Key(bk.action) == session.EventQuit {
			w.quit = true
			return ebiten.Termination
		}
	}

	if w.clock.advance(w.game.ClockRunning()) {
		w.session.Tick()
	}
	return nil
}

// Draw renders the game's draw operations.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(nrgba(snake.ColorBackground))

	face := basicfont.Face7x13
	for _, op := range w.game.Render() {
		switch op.Kind {
		case snake.OpFillRect:
			w.fillRect(screen, op.Rect, op.Color)
		case snake.OpText:
			text.Draw(screen, op.Text, face, op.Rect.X, op.Rect.Y, nrgba(op.Color))
		case snake.OpTextCentered:
			bounds := text.BoundString(face, op.Text)
			x := op.Rect.X + (op.Rect.W-bounds.Dx())/2
			y := op.Rect.Y + (op.Rect.H-bounds.Dy())/2 + bounds.Dy()
			text.Draw(screen, op.Text, face, x, y, nrgba(op.Color))
		}
	}
}

// fillRect draws a filled rectangle by scaling a white pixel.
func (w *Window) fillRect(dst *ebiten.Image, r core.Rect, c core.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W), float64(r.H))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(nrgba(c))
	dst.DrawImage(w.pixel, op)
}

// Layout returns the logical screen size: one unit per board pixel.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.game.Board()
	return b.Width, b.Height
}

func nrgba(c core.Color) color.NRGBA {
	return c.NRGBA()
}

// Run opens the game window and blocks until it is closed or the player quits.
func Run(opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}

	w := NewWindow(opts)
	b := w.game.Board()

	ebiten.SetWindowTitle("snake")
	ebiten.SetTPS(TPS)
	ebiten.SetWindowSize(b.Width*scale, b.Height*scale)

	err := ebiten.RunGame(w)
	if !w.quit {
		// Closing the window ends the round like the quit key.
		w.session.Key(core.ActionQuit)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
