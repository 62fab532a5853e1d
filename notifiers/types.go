package notifiers

import "time"

// FallbackEvent raised when demo data replaced upstream data
type FallbackEvent struct {
	Symbols   []string `json:"symbols"`
	Reason    string   `json:"reason"`
	Timestamp int64    `json:"timestamp"`
}

// NewFallbackEvent create fallback event
func NewFallbackEvent(symbols []string, reason error) *FallbackEvent {
	event := &FallbackEvent{
		Symbols:   symbols,
		Timestamp: time.Now().Unix(),
	}

	if reason != nil {
		event.Reason = reason.Error()
	}

	return event
}
