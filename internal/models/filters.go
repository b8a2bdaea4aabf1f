package models

import "time"

// PermitType é a categoria escolhida no filtro "Type vergunning"
type PermitType string

const (
	PermitTypeAll      PermitType = "all"
	PermitTypeBouw     PermitType = "bouw"
	PermitTypeSloop    PermitType = "sloop"
	PermitTypeKap      PermitType = "kap"
	PermitTypeAanleg   PermitType = "aanleg"
	PermitTypeMonument PermitType = "monument"
)

// PermitTypes lista as categorias filtráveis
var PermitTypes = []PermitType{PermitTypeBouw, PermitTypeSloop, PermitTypeKap, PermitTypeAanleg, PermitTypeMonument}

// permitTypeSeeds liga cada categoria ao termo antigo que abre o grupo no vocabulário
var permitTypeSeeds = map[PermitType]string{
	PermitTypeBouw:     "bouwvergunning",
	PermitTypeSloop:    "sloopvergunning",
	PermitTypeKap:      "kapvergunning",
	PermitTypeAanleg:   "aanlegvergunning",
	PermitTypeMonument: "monumentenvergunning",
}

// IsValid verifica se a categoria é conhecida (inclui "all")
func (t PermitType) IsValid() bool {
	if t == PermitTypeAll {
		return true
	}
	_, ok := permitTypeSeeds[t]
	return ok
}

// SeedTerm retorna o termo antigo usado para expandir a categoria
func (t PermitType) SeedTerm() (string, bool) {
	seed, ok := permitTypeSeeds[t]
	return seed, ok
}

// SearchFilters é o estado dos filtros. É um valor imutável: cada transição
// devolve uma cópia alterada.
type SearchFilters struct {
	SearchQuery string       `json:"search_query"`
	DateFrom    string       `json:"date_from,omitempty"`
	DateTo      string       `json:"date_to,omitempty"`
	Status      PermitStatus `json:"status"`
	PermitType  PermitType   `json:"permit_type"`
}

// DefaultFilters retorna filtros sem restrições
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Status:     StatusAll,
		PermitType: PermitTypeAll,
	}
}

// WithSearchQuery troca o texto de busca
func (f SearchFilters) WithSearchQuery(q string) SearchFilters {
	f.SearchQuery = q
	return f
}

// WithDateRange troca o intervalo de datas (strings vazias removem o limite)
func (f SearchFilters) WithDateRange(from, to string) SearchFilters {
	f.DateFrom = from
	f.DateTo = to
	return f
}

// WithStatus troca o filtro de situação
func (f SearchFilters) WithStatus(s PermitStatus) SearchFilters {
	f.Status = s
	return f
}

// WithPermitType troca o filtro de categoria
func (f SearchFilters) WithPermitType(t PermitType) SearchFilters {
	f.PermitType = t
	return f
}

// Cleared remove todos os filtros mantendo o texto de busca ("Wis filters")
func (f SearchFilters) Cleared() SearchFilters {
	return DefaultFilters().WithSearchQuery(f.SearchQuery)
}

// HasActiveFilters indica se algum filtro além do texto está ativo
func (f SearchFilters) HasActiveFilters() bool {
	return f.DateFrom != "" || f.DateTo != "" ||
		(f.Status != "" && f.Status != StatusAll) ||
		(f.PermitType != "" && f.PermitType != PermitTypeAll)
}

// Normalized preenche status e categoria vazios com "all"
func (f SearchFilters) Normalized() SearchFilters {
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.PermitType == "" {
		f.PermitType = PermitTypeAll
	}
	return f
}

// Validate verifica status, categoria e datas
func (f SearchFilters) Validate() error {
	f = f.Normalized()

	if f.Status != StatusAll && !f.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !f.PermitType.IsValid() {
		return ErrInvalidPermitType
	}

	from, err := parseOptionalDate(f.DateFrom)
	if err != nil {
		return err
	}
	to, err := parseOptionalDate(f.DateTo)
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return ErrInvalidDateRange
	}

	return nil
}

// MatchesStatus aplica o filtro de situação
func (f SearchFilters) MatchesStatus(p Permit) bool {
	return f.Status == "" || f.Status == StatusAll || p.Status == f.Status
}

// MatchesDate aplica o intervalo de datas (inclusivo). Publicações com data
// inválida só passam quando não há intervalo.
func (f SearchFilters) MatchesDate(p Permit) bool {
	if f.DateFrom == "" && f.DateTo == "" {
		return true
	}
	published, err := p.PublishedAt()
	if err != nil {
		return false
	}
	if from, err := parseOptionalDate(f.DateFrom); err == nil && !from.IsZero() && published.Before(from) {
		return false
	}
	if to, err := parseOptionalDate(f.DateTo); err == nil && !to.IsZero() && published.After(to) {
		return false
	}
	return true
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
