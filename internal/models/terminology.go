package models

// TermSuggestion é uma sugestão anotada com o vocabulário de origem
type TermSuggestion struct {
	Term      string `json:"term"`
	IsLegacy  bool   `json:"is_legacy"`
	IsCurrent bool   `json:"is_current"`
}

// SuggestionsResponse é a resposta de GET /terminologie/suggesties
type SuggestionsResponse struct {
	Query       string           `json:"query"`
	Suggestions []TermSuggestion `json:"suggestions"`
}

// ClassificationResponse é a resposta de GET /terminologie/classificatie
type ClassificationResponse struct {
	Term      string `json:"term"`
	IsLegacy  bool   `json:"is_legacy"`
	IsCurrent bool   `json:"is_current"`
}

// ExpansionResponse é a resposta de GET /terminologie/expansie
type ExpansionResponse struct {
	Term  string   `json:"term"`
	Terms []string `json:"terms"`
	Query string   `json:"query"`
}

// TermGroupResponse é um grupo do vocabulário como exibido no painel de ajuda
type TermGroupResponse struct {
	Legacy  []string `json:"legacy"`
	Current []string `json:"current"`
}

// GroupsResponse é a resposta de GET /terminologie/groepen
type GroupsResponse struct {
	Groups []TermGroupResponse `json:"groups"`
	Total  int                 `json:"total"`
}
