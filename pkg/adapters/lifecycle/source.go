package lifecycle

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/aretw0/lifecycle"

	"github.com/macpad/macpad/pkg/core"
)

// sourceBuffer bounds how many collection events may queue up before
// slow consumers start missing them.
const sourceBuffer = 64

// ErrAlreadyStarted is returned by Start on a source that is already running.
var ErrAlreadyStarted = errors.New("source already started")

type notesSource struct {
	manager *core.Manager
	out     chan lifecycle.Event
	started atomic.Bool
}

// NewSource creates a lifecycle.Source that emits the collection events of m.
func NewSource(m *core.Manager) lifecycle.Source {
	return &notesSource{
		manager: m,
		out:     make(chan lifecycle.Event),
	}
}

func (s *notesSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *notesSource) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	queue := make(chan core.Event, sourceBuffer)
	unsubscribe := s.manager.Subscribe(func(e core.Event) {
		// Publishing must never block a mutation.
		select {
		case queue <- e:
		default:
		}
	})

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return nil
			case e := <-queue:
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
