// Package page ties the counter client to a display target for one page load.
package page

import (
	"context"
	"sync"

	"github.com/cloudresume/visitors/display"
	"github.com/cloudresume/visitors/models"
)

type Incrementer interface {
	Increment(ctx context.Context) (models.Count, error)
}

// Loader fires a single increment per page load, however many times Ready is
// called.
type Loader struct {
	Counter Incrementer
	Target  display.Target
	Log     display.Logger

	once sync.Once
}

func New(counter Incrementer, target display.Target, log display.Logger) *Loader {
	return &Loader{
		Counter: counter,
		Target:  target,
		Log:     log,
	}
}

// Ready increments the visitor count and renders the result. Calls after the
// first do nothing.
func (l *Loader) Ready(ctx context.Context) {
	l.once.Do(func() {
		count, err := l.Counter.Increment(ctx)
		display.Show(l.Target, count, err, l.Log)
	})
}
