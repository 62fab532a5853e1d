package sources

import (
	"context"

	"github.com/nzai/stockwatch/quotes"
)

// Source define stock quote source
type Source interface {
	// Quotes query quotes of symbols
	Quotes(context.Context, []string) ([]*quotes.Quote, error)
}
