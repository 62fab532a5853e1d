package notifiers

// Notifier notify upstream fallback events
type Notifier interface {
	Notify(*FallbackEvent)
	Close()
}

// Nop discard all events
type Nop struct{}

// Notify do nothing
func (Nop) Notify(*FallbackEvent) {}

// Close do nothing
func (Nop) Close() {}
