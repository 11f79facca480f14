package model

// Unavailable is rendered literally for any quote field that could not be
// fetched.
const Unavailable = "N/A"

// TickerQuote is one symbol's snapshot. Price and ChangePercent are carried
// as display strings so an unavailable field is just the sentinel value.
type TickerQuote struct {
	Symbol        string
	Price         string
	ChangePercent string
}
