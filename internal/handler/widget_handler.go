package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dailytake/internal/model"
	"dailytake/internal/render"
)

// ResultSource hands out the current day's result, generating it on demand.
type ResultSource interface {
	Get(ctx context.Context) *model.DailyResult
	Warm() bool
}

type WidgetHandler struct {
	source ResultSource
}

func NewWidgetHandler(source ResultSource) *WidgetHandler {
	return &WidgetHandler{source: source}
}

// GetWidget serves the rendered page. Provider failures are already baked
// into the result as displayable text, so this always answers 200.
func (h *WidgetHandler) GetWidget(c *gin.Context) {
	result := h.source.Get(c.Request.Context())
	today := time.Now().Format(model.DateLayout)

	page, err := render.Render(result, today)
	if err != nil {
		slog.Error("error rendering widget", "error", err)
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<html><body><p>Widget temporarily unavailable.</p></body></html>"))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (h *WidgetHandler) GetRoot(c *gin.Context) {
	c.Redirect(http.StatusFound, "/widget")
}

func (h *WidgetHandler) GetTest(c *gin.Context) {
	c.String(http.StatusOK, "Hello, this is working!")
}

func (h *WidgetHandler) GetHealth(c *gin.Context) {
	cacheState := "cold"
	if h.source.Warm() {
		cacheState = "warm"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"cache":  cacheState,
	})
}

// GetAnalyses exposes the same cached result as JSON.
func (h *WidgetHandler) GetAnalyses(c *gin.Context) {
	result := h.source.Get(c.Request.Context())

	res := AnalysesResponse{
		GeneratedOn: result.GeneratedOn,
		Failed:      result.Failed,
		Error:       result.FailureReason,
	}

	for _, q := range result.Quotes {
		res.Quotes = append(res.Quotes, QuoteResponse{
			Symbol:        q.Symbol,
			Price:         q.Price,
			ChangePercent: q.ChangePercent,
		})
	}

	for _, a := range result.Analyses {
		res.Analyses = append(res.Analyses, AnalysisResponse{
			Persona: a.PersonaName,
			Text:    a.Text,
		})
	}

	c.JSON(http.StatusOK, res)
}
