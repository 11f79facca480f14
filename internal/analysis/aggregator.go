package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"dailytake/internal/model"
	"dailytake/pkg/quotes"
)

// Analyst produces one persona's analysis. Implementations must always
// return a displayable result, never an error.
type Analyst interface {
	Analyze(ctx context.Context, persona model.Persona, marketSummary, asOf string) model.PersonaAnalysis
}

// Aggregator runs one full analysis cycle: a single quote batch, one shared
// market summary, and one completion per configured persona.
type Aggregator struct {
	quotes    quotes.Client
	analyst   Analyst
	portfolio []string
	personas  []model.Persona
}

func NewAggregator(quoteClient quotes.Client, analyst Analyst, portfolio []string, personas []model.Persona) *Aggregator {
	return &Aggregator{
		quotes:    quoteClient,
		analyst:   analyst,
		portfolio: portfolio,
		personas:  personas,
	}
}

// Generate produces the result for one day. Persona calls run concurrently
// against the same summary; results land at their persona's configured index
// so output order never depends on completion order. Only a whole-batch
// quote failure marks the cycle failed.
func (a *Aggregator) Generate(ctx context.Context, day string) *model.DailyResult {
	tickerQuotes, err := a.quotes.Fetch(ctx, a.portfolio)
	if err != nil {
		slog.Error("quote batch failed", "provider", a.quotes.Name(), "error", err)
		return &model.DailyResult{
			GeneratedOn:   day,
			Failed:        true,
			FailureReason: fmt.Sprintf("Failed to generate analyses: %v", err),
		}
	}

	summary := BuildMarketSummary(tickerQuotes)

	analyses := make([]model.PersonaAnalysis, len(a.personas))

	var wg sync.WaitGroup
	for i, persona := range a.personas {
		wg.Add(1)
		go func(i int, persona model.Persona) {
			defer wg.Done()
			analyses[i] = a.analyst.Analyze(ctx, persona, summary, day)
		}(i, persona)
	}
	wg.Wait()

	slog.Info("analysis cycle complete", "day", day, "quotes", len(tickerQuotes), "personas", len(analyses))

	return &model.DailyResult{
		GeneratedOn: day,
		Quotes:      tickerQuotes,
		Analyses:    analyses,
	}
}

// BuildMarketSummary formats the quote batch one line per symbol, in
// portfolio order. Unavailable fields render as the literal marker.
func BuildMarketSummary(tickerQuotes []model.TickerQuote) string {
	lines := make([]string, 0, len(tickerQuotes))
	for _, q := range tickerQuotes {
		lines = append(lines, fmt.Sprintf("%s: Price $%s, Change %s%%", q.Symbol, q.Price, q.ChangePercent))
	}
	return strings.Join(lines, "\n")
}
