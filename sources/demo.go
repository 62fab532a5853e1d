package sources

import (
	"context"
	"math/rand"
	"sort"

	"github.com/nzai/stockwatch/constants"
	"github.com/nzai/stockwatch/quotes"
)

// DemoStock define static demo stock
type DemoStock struct {
	Name      string
	BasePrice float64
}

// DefaultDemoStocks define demo stock table
var DefaultDemoStocks = map[string]DemoStock{
	"RELIANCE.NS":   {Name: "Reliance Industries Ltd", BasePrice: 2450.00},
	"TCS.NS":        {Name: "Tata Consultancy Services Ltd", BasePrice: 3650.00},
	"HDFCBANK.NS":   {Name: "HDFC Bank Ltd", BasePrice: 1580.00},
	"INFY.NS":       {Name: "Infosys Ltd", BasePrice: 1420.00},
	"WIPRO.NS":      {Name: "Wipro Ltd", BasePrice: 385.00},
	"ICICIBANK.NS":  {Name: "ICICI Bank Ltd", BasePrice: 1125.00},
	"SBIN.NS":       {Name: "State Bank of India", BasePrice: 625.00},
	"BHARTIARTL.NS": {Name: "Bharti Airtel Ltd", BasePrice: 1520.00},
	"ITC.NS":        {Name: "ITC Ltd", BasePrice: 465.00},
	"HINDUNILVR.NS": {Name: "Hindustan Unilever Ltd", BasePrice: 2380.00},
}

// Listing symbol and display name of a demo stock
type Listing struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Demo generate synthetic quotes from a static table
type Demo struct {
	stocks map[string]DemoStock
	// random returns a value in [0, 1]
	random func() float64
}

// NewDemo create demo source with default stock table
func NewDemo() *Demo {
	return NewDemoWithRandom(DefaultDemoStocks, rand.Float64)
}

// NewDemoWithRandom create demo source with custom table and random generator
func NewDemoWithRandom(stocks map[string]DemoStock, random func() float64) *Demo {
	return &Demo{stocks: stocks, random: random}
}

// Quotes generate one quote per symbol, never fails
func (d Demo) Quotes(ctx context.Context, symbols []string) ([]*quotes.Quote, error) {
	qs := make([]*quotes.Quote, 0, len(symbols))
	for _, symbol := range symbols {
		qs = append(qs, d.Quote(symbol))
	}

	return qs, nil
}

// Quote generate quote of symbol
func (d Demo) Quote(symbol string) *quotes.Quote {
	stock, found := d.stocks[symbol]
	if !found {
		return &quotes.Quote{Symbol: symbol, Name: constants.UnknownStockName}
	}

	// uniform in [-3, 3]
	changePercent := (d.random()*2 - 1) * constants.MaxPriceFluctuation
	change := stock.BasePrice * changePercent / 100

	return &quotes.Quote{
		Symbol:        symbol,
		Name:          stock.Name,
		CurrentPrice:  quotes.Round(stock.BasePrice + change),
		PreviousClose: quotes.Round(stock.BasePrice),
		Change:        quotes.Round(change),
		ChangePercent: quotes.Round(changePercent),
	}
}

// Listings list demo stocks ordered by symbol
func (d Demo) Listings() []Listing {
	listings := make([]Listing, 0, len(d.stocks))
	for symbol, stock := range d.stocks {
		listings = append(listings, Listing{Symbol: symbol, Name: stock.Name})
	}

	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Symbol < listings[j].Symbol
	})

	return listings
}
