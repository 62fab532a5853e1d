package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/nzai/stockwatch/constants"
	"github.com/nzai/stockwatch/quotes"
	"go.uber.org/zap"
)

// YahooFinance yahoo finance source
type YahooFinance struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// NewYahooFinance create yahoo finance source
func NewYahooFinance(endpoint, userAgent string, timeout time.Duration) *YahooFinance {
	return &YahooFinance{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Quotes query quotes from yahoo finance, one request without retry
func (yahoo YahooFinance) Quotes(ctx context.Context, symbols []string) ([]*quotes.Quote, error) {
	u, err := yahoo.quoteURL(symbols)
	if err != nil {
		zap.L().Error("parse yahoo finance endpoint failed", zap.Error(err), zap.String("endpoint", yahoo.endpoint))
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		zap.L().Error("create yahoo finance request failed", zap.Error(err), zap.String("url", u))
		return nil, err
	}

	if yahoo.userAgent != "" {
		request.Header.Set("User-Agent", yahoo.userAgent)
	}

	response, err := yahoo.client.Do(request)
	if err != nil {
		zap.L().Warn("query yahoo finance quote failed", zap.Error(err), zap.String("url", u))
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		zap.L().Warn("unexpected yahoo finance status", zap.Int("code", response.StatusCode), zap.String("url", u))
		return nil, fmt.Errorf("%w: %d", constants.ErrUnexpectedStatusCode, response.StatusCode)
	}

	yr := new(quotes.YahooQuoteResponse)
	err = sonic.ConfigFastest.NewDecoder(response.Body).Decode(yr)
	if err != nil {
		zap.L().Warn("unmarshal yahoo finance response failed", zap.Error(err), zap.String("url", u))
		return nil, fmt.Errorf("%w: %v", constants.ErrMalformedPayload, err)
	}

	err = yr.Validate()
	if err != nil {
		zap.L().Warn("yahoo finance response invalid", zap.Error(err), zap.String("url", u))
		return nil, err
	}

	qs := yr.ToQuotes()
	zap.L().Debug("query yahoo finance quote success", zap.Strings("symbols", symbols), zap.Int("quotes", len(qs)))

	return qs, nil
}

// quoteURL append symbols to endpoint, keeping its own query parameters
func (yahoo YahooFinance) quoteURL(symbols []string) (string, error) {
	u, err := url.Parse(yahoo.endpoint)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("symbols", strings.Join(symbols, ","))
	u.RawQuery = query.Encode()

	return u.String(), nil
}
