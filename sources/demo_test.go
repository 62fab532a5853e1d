package sources

import (
	"context"
	"math"
	"testing"

	"github.com/nzai/stockwatch/constants"
)

func TestDemo_Quote_KnownSymbols(t *testing.T) {
	demo := NewDemo()
	for symbol, stock := range DefaultDemoStocks {
		for index := 0; index < 100; index++ {
			quote := demo.Quote(symbol)

			if quote.Symbol != symbol || quote.Name != stock.Name {
				t.Fatalf("Demo.Quote(%s) = %+v, want name %s", symbol, quote, stock.Name)
			}

			if quote.PreviousClose != stock.BasePrice {
				t.Errorf("Demo.Quote(%s).PreviousClose = %v, want %v", symbol, quote.PreviousClose, stock.BasePrice)
			}

			maxChange := stock.BasePrice * constants.MaxPriceFluctuation / 100
			if math.Abs(quote.CurrentPrice-stock.BasePrice) > maxChange+0.005 {
				t.Errorf("Demo.Quote(%s).CurrentPrice = %v, out of ±3%% of %v", symbol, quote.CurrentPrice, stock.BasePrice)
			}

			if math.Abs(quote.ChangePercent) > constants.MaxPriceFluctuation {
				t.Errorf("Demo.Quote(%s).ChangePercent = %v, out of ±3", symbol, quote.ChangePercent)
			}

			for _, value := range []float64{quote.CurrentPrice, quote.PreviousClose, quote.Change, quote.ChangePercent} {
				if !hasAtMostTwoDecimals(value) {
					t.Errorf("Demo.Quote(%s) value %v has more than 2 decimals", symbol, value)
				}
			}
		}
	}
}

func TestDemo_Quote_Bounds(t *testing.T) {
	cases := []struct {
		random        float64
		currentPrice  float64
		change        float64
		changePercent float64
	}{
		{random: 0, currentPrice: 2376.5, change: -73.5, changePercent: -3},
		{random: 0.5, currentPrice: 2450, change: 0, changePercent: 0},
		{random: 1, currentPrice: 2523.5, change: 73.5, changePercent: 3},
		{random: 0.75, currentPrice: 2486.75, change: 36.75, changePercent: 1.5},
	}

	for _, _case := range cases {
		random := _case.random
		demo := NewDemoWithRandom(DefaultDemoStocks, func() float64 { return random })

		quote := demo.Quote("RELIANCE.NS")
		if quote.CurrentPrice != _case.currentPrice ||
			quote.Change != _case.change ||
			quote.ChangePercent != _case.changePercent ||
			quote.PreviousClose != 2450 {
			t.Errorf("Demo.Quote() with random %v = %+v", random, quote)
		}
	}
}

func TestDemo_Quote_UnknownSymbol(t *testing.T) {
	demo := NewDemo()
	quote := demo.Quote("AAPL")

	if quote.Symbol != "AAPL" || quote.Name != constants.UnknownStockName {
		t.Errorf("Demo.Quote() = %+v, want unknown stock", quote)
	}

	if quote.CurrentPrice != 0 || quote.PreviousClose != 0 || quote.Change != 0 || quote.ChangePercent != 0 {
		t.Errorf("Demo.Quote() = %+v, want zero values", quote)
	}
}

func TestDemo_Quotes(t *testing.T) {
	symbols := []string{"TCS.NS", "UNKNOWN", "TCS.NS"}
	qs, err := NewDemo().Quotes(context.Background(), symbols)
	if err != nil {
		t.Fatalf("Demo.Quotes() error = %v", err)
	}

	if len(qs) != len(symbols) {
		t.Fatalf("Demo.Quotes() length = %d, want %d", len(qs), len(symbols))
	}

	for index, quote := range qs {
		if quote.Symbol != symbols[index] {
			t.Errorf("quotes[%d].Symbol = %s, want %s", index, quote.Symbol, symbols[index])
		}
	}
}

func hasAtMostTwoDecimals(value float64) bool {
	scaled := value * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func TestDemo_Listings(t *testing.T) {
	listings := NewDemo().Listings()
	if len(listings) != len(DefaultDemoStocks) {
		t.Fatalf("Demo.Listings() length = %d, want %d", len(listings), len(DefaultDemoStocks))
	}

	for index, listing := range listings {
		if listing.Name != DefaultDemoStocks[listing.Symbol].Name {
			t.Errorf("listings[%d] = %+v", index, listing)
		}

		if index > 0 && listings[index-1].Symbol >= listing.Symbol {
			t.Errorf("listings not ordered at %d: %s >= %s", index, listings[index-1].Symbol, listing.Symbol)
		}
	}
}
