package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dailytake/internal/analysis"
	"dailytake/internal/cache"
	"dailytake/internal/handler"
	"dailytake/pkg/llm"
	"dailytake/pkg/quotes"
)

const fallbackAPIKey = "fallback-dummy-key"

var defaultPortfolio = []string{"TSLA", "INTC", "FNMAS", "IBRX"}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	portfolio := defaultPortfolio
	if raw := os.Getenv("PORTFOLIO"); raw != "" {
		portfolio = parsePortfolio(raw)
	}

	completionClient := newCompletionClient()
	slog.Info("starting widget service", "provider", completionClient.Name(), "portfolio", portfolio)

	quoteClient := quotes.NewFinnhubClient(os.Getenv("FINNHUB_API_KEY"))

	aggregator := analysis.NewAggregator(
		quoteClient,
		llm.NewAnalyst(completionClient),
		portfolio,
		analysis.DefaultPersonas(),
	)
	dailyCache := cache.NewDailyCache(aggregator)

	widgetHandler := handler.NewWidgetHandler(dailyCache)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", widgetHandler.GetRoot)
	r.GET("/widget", widgetHandler.GetWidget)
	r.GET("/test", widgetHandler.GetTest)
	r.GET("/health", widgetHandler.GetHealth)
	r.GET("/api/analyses", widgetHandler.GetAnalyses)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// newCompletionClient picks the first configured backend. With no key set at
// all the xAI client still gets a placeholder so startup never fails; every
// analysis then degrades to an error string until a key is configured.
func newCompletionClient() llm.CompletionClient {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return llm.NewOpenAIClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}

	key := os.Getenv("XAI_API_KEY")
	if key == "" {
		slog.Warn("XAI_API_KEY not set, using fallback key; analyses will fail until a key is configured")
		key = fallbackAPIKey
	}
	return llm.NewXAIClient(key)
}

func parsePortfolio(raw string) []string {
	var symbols []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			symbols = append(symbols, strings.ToUpper(s))
		}
	}
	if len(symbols) == 0 {
		return defaultPortfolio
	}
	return symbols
}
