//go:build ebiten

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// namedKeys maps configured key names to ebiten keys. Modifier chords such as
// "ctrl+c" have no entry; closing the window quits instead.
var namedKeys = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"space":     ebiten.KeySpace,
	"esc":       ebiten.KeyEscape,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.Key0,
	"1":         ebiten.Key1,
	"2":         ebiten.Key2,
	"3":         ebiten.Key3,
	"4":         ebiten.Key4,
	"5":         ebiten.Key5,
	"6":         ebiten.Key6,
	"7":         ebiten.Key7,
	"8":         ebiten.Key8,
	"9":         ebiten.Key9,
}

// boundKey pairs a window key with the symbol it sends.
type boundKey struct {
	key    ebiten.Key
	action core.Action
}

// bindKeys resolves the configured bindings. Names without a window key are
// returned as skipped.
func bindKeys(cfg config.KeyConfig) (bound []boundKey, skipped []string) {
	for _, a := range core.Actions {
		for _, name := range cfg.For(a) {
			k, ok := namedKeys[name]
			if !ok {
				skipped = append(skipped, name)
				continue
			}
			bound = append(bound, boundKey{key: k, action: a})
		}
	}
	return bound, skipped
}
