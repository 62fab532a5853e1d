package constants

import "time"

const (
	// Version define application version
	Version = "v1.0.0"
	// DefaultAddress define default listen address
	DefaultAddress = ":8000"
	// DefaultUpstreamURL define default yahoo finance quote api
	DefaultUpstreamURL = "https://query1.finance.yahoo.com/v7/finance/quote"
	// DefaultUpstreamTimeout define default upstream request timeout
	DefaultUpstreamTimeout = time.Second * 5
	// DefaultUserAgent define user agent sent to upstream
	DefaultUserAgent = "stockwatch/1.0"
	// DefaultNsqTopic define default fallback notification topic
	DefaultNsqTopic = "stockwatch.fallback"
	// UnknownStockName define name of symbols missing from demo table
	UnknownStockName = "Unknown Stock"
	// UnavailableName define name of upstream records without any name
	UnavailableName = "N/A"
	// MaxPriceFluctuation define max demo price change in percent
	MaxPriceFluctuation = 3.0
)

// NoSymbolsMessage define error message returned to client without symbols
const NoSymbolsMessage = "No symbols provided"
