package notifiers

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultAsyncQueueSize define pending events kept by async notifier
const DefaultAsyncQueueSize = 64

// Async forward events to wrapped notifier from a single worker,
// Notify never blocks and drops events when queue is full
type Async struct {
	notifier Notifier
	events   chan *FallbackEvent
	done     chan struct{}
	mutex    sync.RWMutex
	closed   bool
}

// NewAsync create async notifier and start its worker
func NewAsync(notifier Notifier, size int) *Async {
	if size <= 0 {
		size = DefaultAsyncQueueSize
	}

	a := &Async{
		notifier: notifier,
		events:   make(chan *FallbackEvent, size),
		done:     make(chan struct{}),
	}
	go a.run()

	return a
}

func (a *Async) run() {
	defer close(a.done)
	for event := range a.events {
		a.notifier.Notify(event)
	}
}

// Notify queue event
func (a *Async) Notify(event *FallbackEvent) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	if a.closed {
		zap.L().Warn("notifier closed, fallback event dropped", zap.Any("event", event))
		return
	}

	select {
	case a.events <- event:
	default:
		zap.L().Warn("notifier queue full, fallback event dropped", zap.Any("event", event))
	}
}

// Close flush pending events and close wrapped notifier
func (a *Async) Close() {
	a.mutex.Lock()
	if a.closed {
		a.mutex.Unlock()
		return
	}
	a.closed = true
	close(a.events)
	a.mutex.Unlock()

	<-a.done
	a.notifier.Close()
}
