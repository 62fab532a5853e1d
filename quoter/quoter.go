package quoter

import (
	"context"

	"github.com/nzai/stockwatch/notifiers"
	"github.com/nzai/stockwatch/quotes"
	"github.com/nzai/stockwatch/sources"
	"go.uber.org/zap"
)

// Result stock quotes response
type Result struct {
	Stocks   []*quotes.Quote `json:"stocks"`
	DemoMode bool            `json:"demo_mode,omitempty"`
}

// Quoter query upstream quotes, fallback to demo data on any failure
type Quoter struct {
	upstream sources.Source
	fallback *sources.Demo
	notifier notifiers.Notifier
}

// New create quoter, nil upstream means always demo mode.
// notifier runs off the request path, the upstream call stays the only blocking operation.
func New(upstream sources.Source, fallback *sources.Demo, notifier notifiers.Notifier) *Quoter {
	if notifier == nil {
		notifier = notifiers.Nop{}
	}

	if _, nop := notifier.(notifiers.Nop); !nop {
		notifier = notifiers.NewAsync(notifier, notifiers.DefaultAsyncQueueSize)
	}

	return &Quoter{
		upstream: upstream,
		fallback: fallback,
		notifier: notifier,
	}
}

// Quotes query quotes of symbols
func (q Quoter) Quotes(ctx context.Context, symbols []string) *Result {
	if q.upstream != nil {
		stocks, err := q.upstream.Quotes(ctx, symbols)
		if err == nil {
			return &Result{Stocks: stocks}
		}

		zap.L().Warn("upstream unavailable, use demo mode", zap.Error(err), zap.Strings("symbols", symbols))
		q.notifier.Notify(notifiers.NewFallbackEvent(symbols, err))
	}

	zap.L().Info("use demo mode", zap.Strings("symbols", symbols))

	// demo never fails
	stocks, _ := q.fallback.Quotes(ctx, symbols)

	return &Result{Stocks: stocks, DemoMode: true}
}

// Recommendations symbols offered for quick add, always served by demo table
func (q Quoter) Recommendations() []sources.Listing {
	return q.fallback.Listings()
}

// Close flush pending notifications and close notifier
func (q Quoter) Close() {
	q.notifier.Close()
}
