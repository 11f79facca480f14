package quotes

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"dailytake/internal/model"
)

const perSymbolTimeout = 10 * time.Second

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// Fetch calls the quote endpoint once per symbol. A failed symbol never
// aborts the batch; the batch only fails as a whole when ctx is already
// done, which is the one case the caller treats as unrecoverable.
func (c *FinnhubClient) Fetch(ctx context.Context, symbols []string) ([]model.TickerQuote, error) {
	tickerQuotes := make([]model.TickerQuote, 0, len(symbols))

	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("quote batch aborted: %w", err)
		}
		tickerQuotes = append(tickerQuotes, c.fetchOne(ctx, symbol))
	}

	return tickerQuotes, nil
}

func (c *FinnhubClient) fetchOne(ctx context.Context, symbol string) model.TickerQuote {
	q := model.TickerQuote{
		Symbol:        symbol,
		Price:         model.Unavailable,
		ChangePercent: model.Unavailable,
	}

	ctx, cancel := context.WithTimeout(ctx, perSymbolTimeout)
	defer cancel()

	res, _, err := c.client.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		slog.Warn("quote fetch failed", "symbol", symbol, "error", err)
		return q
	}

	// Finnhub answers unknown symbols with an all-zero quote instead of an
	// error.
	if res.C == nil || (res.GetC() == 0 && res.GetDp() == 0 && res.GetPc() == 0) {
		slog.Warn("no quote data for symbol", "symbol", symbol)
		return q
	}

	q.Price = formatQuoteValue(res.GetC())
	if res.Dp != nil {
		q.ChangePercent = formatQuoteValue(res.GetDp())
	}

	return q
}

// formatQuoteValue renders a quote field the way the widget displays it:
// integral values keep one decimal place (250.0), everything else uses the
// shortest representation that round-trips (1.2).
func formatQuoteValue(v float32) string {
	f := float64(v)
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 32)
	}
	return strconv.FormatFloat(f, 'f', -1, 32)
}
