package models

// SearchRequest representa os parâmetros de GET /vergunningen e GET /dashboard
type SearchRequest struct {
	Query          string `form:"q" json:"q"`
	DateFrom       string `form:"date_from" json:"date_from,omitempty"`
	DateTo         string `form:"date_to" json:"date_to,omitempty"`
	Status         string `form:"status" json:"status,omitempty"`
	PermitType     string `form:"permit_type" json:"permit_type,omitempty"`
	Municipalities string `form:"municipalities" json:"municipalities,omitempty"`
}

// Filters converte os parâmetros em filtros
func (r SearchRequest) Filters() SearchFilters {
	return DefaultFilters().
		WithSearchQuery(r.Query).
		WithDateRange(r.DateFrom, r.DateTo).
		WithStatus(PermitStatus(r.Status)).
		WithPermitType(PermitType(r.PermitType)).
		Normalized()
}

// QueryInfo descreve como o texto digitado foi expandido
type QueryInfo struct {
	Original string   `json:"original"`
	Expanded string   `json:"expanded"`
	Terms    []string `json:"terms"`
}

// SearchResponse é a resposta da busca de publicações
type SearchResponse struct {
	Results            []Permit      `json:"results"`
	Total              int           `json:"total"`
	Query              QueryInfo     `json:"query"`
	Filters            SearchFilters `json:"filters"`
	Municipalities     []string      `json:"municipalities,omitempty"`
	InferredPermitType PermitType    `json:"inferred_permit_type,omitempty"`
	FromCache          bool          `json:"from_cache"`
}
