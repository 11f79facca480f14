package handler

type QuoteResponse struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	ChangePercent string `json:"change_percent"`
}

type AnalysisResponse struct {
	Persona string `json:"persona"`
	Text    string `json:"text"`
}

type AnalysesResponse struct {
	GeneratedOn string             `json:"generated_on"`
	Quotes      []QuoteResponse    `json:"quotes"`
	Analyses    []AnalysisResponse `json:"analyses"`
	Failed      bool               `json:"failed"`
	Error       string             `json:"error,omitempty"`
}
