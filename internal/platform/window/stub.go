//go:build !ebiten

package window

import "github.com/vovakirdan/shaperun/internal/registry"

// Run reports that the window front end was not compiled in.
func Run(registry.Game, Options) error {
	return ErrUnavailable
}
