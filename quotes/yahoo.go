package quotes

import (
	"fmt"
	"strings"

	"github.com/nzai/stockwatch/constants"
)

// YahooQuoteResponse define yahoo finance v7 quote response structure
type YahooQuoteResponse struct {
	QuoteResponse *struct {
		Result []YahooQuote `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteResponse"`
}

// YahooQuote define one record of yahoo finance quote response
type YahooQuote struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
}

// Validate validate response is well formed
func (r YahooQuoteResponse) Validate() error {
	if r.QuoteResponse == nil {
		return fmt.Errorf("%w: quoteResponse is null", constants.ErrMalformedPayload)
	}

	if r.QuoteResponse.Error != nil {
		return fmt.Errorf("%w: %s %s", constants.ErrMalformedPayload, r.QuoteResponse.Error.Code, r.QuoteResponse.Error.Description)
	}

	if r.QuoteResponse.Result == nil {
		return fmt.Errorf("%w: quoteResponse.result is null", constants.ErrMalformedPayload)
	}

	return nil
}

// ToQuotes convert response records to quotes
func (r YahooQuoteResponse) ToQuotes() []*Quote {
	if r.QuoteResponse == nil {
		return []*Quote{}
	}

	qs := make([]*Quote, 0, len(r.QuoteResponse.Result))
	for _, yq := range r.QuoteResponse.Result {
		qs = append(qs, yq.ToQuote())
	}

	return qs
}

// ToQuote convert record to quote
func (q YahooQuote) ToQuote() *Quote {
	return &Quote{
		Symbol:        q.Symbol,
		Name:          q.name(),
		CurrentPrice:  q.RegularMarketPrice,
		PreviousClose: q.RegularMarketPreviousClose,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
	}
}

func (q YahooQuote) name() string {
	if name := strings.TrimSpace(q.ShortName); name != "" {
		return name
	}

	if name := strings.TrimSpace(q.LongName); name != "" {
		return name
	}

	return constants.UnavailableName
}
