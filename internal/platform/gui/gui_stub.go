//go:build !ebiten

package gui

// Run reports that the window host was not compiled in.
func Run(Options) error {
	return ErrUnavailable
}
