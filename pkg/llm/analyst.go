package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dailytake/internal/model"
)

const completionTimeout = 60 * time.Second

// Analyst asks the completion provider for one persona's daily take on the
// market summary. It never fails its caller: any provider error becomes the
// analysis text itself.
type Analyst struct {
	client CompletionClient
}

func NewAnalyst(client CompletionClient) *Analyst {
	return &Analyst{client: client}
}

func (a *Analyst) Analyze(ctx context.Context, persona model.Persona, marketSummary, asOf string) model.PersonaAnalysis {
	userPrompt := fmt.Sprintf(
		"Today's date: %s. Portfolio summary: %s. Provide a concise daily analysis (200-300 words) from your perspective.",
		asOf, marketSummary,
	)

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	text, err := a.client.Complete(ctx, persona.SystemPrompt, userPrompt)
	if err != nil {
		slog.Error("error generating analysis", "persona", persona.Name, "provider", a.client.Name(), "error", err)
		return model.PersonaAnalysis{
			PersonaName: persona.Name,
			Text:        fmt.Sprintf("Error generating %s's analysis: %v", persona.Name, err),
		}
	}

	return model.PersonaAnalysis{
		PersonaName: persona.Name,
		Text:        text,
	}
}
