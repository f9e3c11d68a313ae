package core

import (
	"context"
	"errors"
	"log"
	"sync"
)

// ErrServerStopped is returned when an event is submitted after the loop
// has stopped.
var ErrServerStopped = errors.New("server stopped")

// EventLoop serialises every world mutation onto a single goroutine. Events
// are handled one at a time, in the order they were accepted.
type EventLoop struct {
	inbox    chan any
	handle   func(any)
	onStop   func()
	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewEventLoop(size int, handle func(any), onStop func()) *EventLoop {
	if size <= 0 {
		size = 1
	}
	return &EventLoop{
		inbox:    make(chan any, size),
		handle:   handle,
		onStop:   onStop,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (l *EventLoop) Run() {
	defer close(l.done)
	log.Println("[server] event loop started")

	for {
		select {
		case <-l.stopChan:
			if l.onStop != nil {
				l.onStop()
			}
			log.Println("[server] event loop stopped")
			return
		case ev := <-l.inbox:
			l.handle(ev)
		}
	}
}

// Stop asks the loop to exit. It is safe to call more than once.
func (l *EventLoop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// Done is closed once Run has returned.
func (l *EventLoop) Done() <-chan struct{} {
	return l.done
}

// Submit queues ev for the loop. It waits while the inbox is full, but never
// past a stop or ctx cancellation.
func (l *EventLoop) Submit(ctx context.Context, ev any) error {
	select {
	case <-l.stopChan:
		return ErrServerStopped
	default:
	}
	select {
	case l.inbox <- ev:
		return nil
	case <-l.stopChan:
		return ErrServerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}
