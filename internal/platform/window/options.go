// Package window runs games in a desktop window using Ebitengine.
// The Ebitengine front end is only compiled with the "ebiten" build tag so
// that terminal and SSH builds need no graphics toolchain.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shaperun/internal/storage"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the 'ebiten' tag")

// Options configures a window session.
type Options struct {
	Title    string
	Scale    float64 // Window size as a multiple of the game viewport
	TickRate int
	Seed     int64
	Store    *storage.Store // Optional score storage
	Logger   *log.Logger    // Optional
}

// DefaultOptions returns a 60 TPS window at the viewport's native size.
func DefaultOptions() Options {
	return Options{
		Title:    "Shape Run",
		Scale:    1,
		TickRate: 60,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.TickRate <= 0 {
		o.TickRate = d.TickRate
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}
