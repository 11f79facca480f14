package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"dailytake/internal/model"

	"github.com/go-playground/assert/v2"
)

type fakeQuoteClient struct {
	quotes []model.TickerQuote
	err    error
}

func (f *fakeQuoteClient) Fetch(ctx context.Context, symbols []string) ([]model.TickerQuote, error) {
	return f.quotes, f.err
}

func (f *fakeQuoteClient) Name() string {
	return "fake"
}

// slowFirstAnalyst delays earlier-configured personas so that completion
// order is the reverse of configuration order.
type slowFirstAnalyst struct {
	personaCount int
	fail         bool
	summaries    chan string
}

func (f *slowFirstAnalyst) Analyze(ctx context.Context, persona model.Persona, marketSummary, asOf string) model.PersonaAnalysis {
	if f.summaries != nil {
		f.summaries <- marketSummary
	}
	for i, p := range DefaultPersonas() {
		if p.Name == persona.Name {
			time.Sleep(time.Duration(f.personaCount-i) * 10 * time.Millisecond)
		}
	}
	if f.fail {
		return model.PersonaAnalysis{
			PersonaName: persona.Name,
			Text:        fmt.Sprintf("Error generating %s's analysis: request timed out", persona.Name),
		}
	}
	return model.PersonaAnalysis{
		PersonaName: persona.Name,
		Text:        "analysis for " + persona.Name,
	}
}

func TestBuildMarketSummary(t *testing.T) {
	summary := BuildMarketSummary([]model.TickerQuote{
		{Symbol: "TSLA", Price: model.Unavailable, ChangePercent: model.Unavailable},
		{Symbol: "INTC", Price: "250.0", ChangePercent: "1.2"},
	})

	assert.Equal(t, "TSLA: Price $N/A, Change N/A%\nINTC: Price $250.0, Change 1.2%", summary)
}

func TestGenerate_OrderMatchesConfiguration(t *testing.T) {
	personas := DefaultPersonas()
	quoteClient := &fakeQuoteClient{quotes: []model.TickerQuote{
		{Symbol: "TSLA", Price: "250.0", ChangePercent: "1.2"},
	}}
	analyst := &slowFirstAnalyst{personaCount: len(personas)}

	agg := NewAggregator(quoteClient, analyst, []string{"TSLA"}, personas)

	result := agg.Generate(context.Background(), "2026-08-30")

	assert.Equal(t, false, result.Failed)
	assert.Equal(t, "2026-08-30", result.GeneratedOn)
	assert.Equal(t, len(personas), len(result.Analyses))

	for i, p := range personas {
		assert.Equal(t, p.Name, result.Analyses[i].PersonaName)
	}
}

func TestGenerate_SharedSummary(t *testing.T) {
	personas := DefaultPersonas()
	quoteClient := &fakeQuoteClient{quotes: []model.TickerQuote{
		{Symbol: "TSLA", Price: model.Unavailable, ChangePercent: model.Unavailable},
		{Symbol: "INTC", Price: "250.0", ChangePercent: "1.2"},
	}}
	analyst := &slowFirstAnalyst{
		personaCount: len(personas),
		summaries:    make(chan string, len(personas)),
	}

	agg := NewAggregator(quoteClient, analyst, []string{"TSLA", "INTC"}, personas)
	agg.Generate(context.Background(), "2026-08-30")

	want := "TSLA: Price $N/A, Change N/A%\nINTC: Price $250.0, Change 1.2%"
	for range personas {
		assert.Equal(t, want, <-analyst.summaries)
	}
}

func TestGenerate_AllPersonasFailStillDegraded(t *testing.T) {
	personas := DefaultPersonas()
	quoteClient := &fakeQuoteClient{quotes: []model.TickerQuote{
		{Symbol: "TSLA", Price: "250.0", ChangePercent: "1.2"},
	}}
	analyst := &slowFirstAnalyst{personaCount: len(personas), fail: true}

	agg := NewAggregator(quoteClient, analyst, []string{"TSLA"}, personas)

	result := agg.Generate(context.Background(), "2026-08-30")

	assert.Equal(t, false, result.Failed)
	assert.Equal(t, len(personas), len(result.Analyses))

	for _, a := range result.Analyses {
		if !strings.Contains(a.Text, "Error generating") {
			t.Errorf("expected error text for %s, got %q", a.PersonaName, a.Text)
		}
	}
}

func TestGenerate_QuoteBatchFailure(t *testing.T) {
	quoteClient := &fakeQuoteClient{err: errors.New("quote batch aborted: context canceled")}
	analyst := &slowFirstAnalyst{personaCount: 4}

	agg := NewAggregator(quoteClient, analyst, []string{"TSLA"}, DefaultPersonas())

	result := agg.Generate(context.Background(), "2026-08-30")

	assert.Equal(t, true, result.Failed)
	assert.Equal(t, 0, len(result.Quotes))
	assert.Equal(t, 0, len(result.Analyses))

	if !strings.Contains(result.FailureReason, "Failed to generate analyses") {
		t.Errorf("unexpected failure reason: %q", result.FailureReason)
	}
}
