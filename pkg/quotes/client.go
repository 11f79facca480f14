package quotes

import (
	"context"

	"dailytake/internal/model"
)

// Client fetches a batch of quotes. Fetch returns exactly one TickerQuote
// per requested symbol, in request order; symbols that fail individually
// keep their slot with unavailable fields. The returned error covers only
// an unrecoverable whole-batch failure.
type Client interface {
	Fetch(ctx context.Context, symbols []string) ([]model.TickerQuote, error)
	Name() string
}
