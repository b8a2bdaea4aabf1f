package models

import (
	"sort"
	"strings"

	"github.com/brabant-dados/app-vergunningen-search/internal/constants"
)

// Municipality é um município do catálogo com o total de publicações
type Municipality struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	PermitCount int    `json:"permit_count"`
}

// MunicipalitiesResponse é a resposta de GET /gemeenten
type MunicipalitiesResponse struct {
	Municipalities []Municipality `json:"municipalities"`
	Total          int            `json:"total"`
}

// Selection é o conjunto de municípios escolhidos no filtro. Como os filtros,
// é imutável: Toggle, SelectAll e Clear devolvem um novo valor.
// Uma seleção vazia não restringe a busca.
type Selection struct {
	names map[string]bool
}

// NewSelection cria uma seleção com os nomes informados
func NewSelection(names ...string) Selection {
	s := Selection{names: make(map[string]bool, len(names))}
	for _, n := range names {
		s.names[n] = true
	}
	return s
}

// CanonicalMunicipality resolve o nome no catálogo sem diferenciar maiúsculas
func CanonicalMunicipality(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, g := range constants.GemeentenNoordBrabant {
		if strings.EqualFold(g.Name, name) {
			return g.Name, true
		}
	}
	return "", false
}

// ParseSelection lê a lista separada por vírgulas do parâmetro municipalities.
// "all" seleciona o catálogo inteiro. Nomes com vírgula (ex.: "Nuenen, Gerwen
// en Nederwetten") são reconhecidos antes da separação.
func ParseSelection(raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewSelection(), nil
	}
	if strings.EqualFold(raw, "all") {
		return NewSelection().SelectAll(), nil
	}

	var picked []string
	for _, g := range constants.GemeentenNoordBrabant {
		if !strings.Contains(g.Name, ",") {
			continue
		}
		if idx := strings.Index(strings.ToLower(raw), strings.ToLower(g.Name)); idx >= 0 {
			picked = append(picked, g.Name)
			raw = raw[:idx] + raw[idx+len(g.Name):]
		}
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, ok := CanonicalMunicipality(part)
		if !ok {
			return Selection{}, ErrUnknownMunicipality
		}
		picked = append(picked, name)
	}

	return NewSelection(picked...), nil
}

// Toggle inclui o município se ausente, remove se presente
func (s Selection) Toggle(name string) Selection {
	next := s.clone()
	if next.names[name] {
		delete(next.names, name)
	} else {
		next.names[name] = true
	}
	return next
}

// SelectAll seleciona todos os municípios do catálogo
func (s Selection) SelectAll() Selection {
	return NewSelection(constants.NomesGemeenten()...)
}

// Clear remove todos os municípios
func (s Selection) Clear() Selection {
	return NewSelection()
}

// IsAllSelected indica se o catálogo inteiro está selecionado
func (s Selection) IsAllSelected() bool {
	for _, g := range constants.GemeentenNoordBrabant {
		if !s.names[g.Name] {
			return false
		}
	}
	return true
}

// Contains verifica se o município está na seleção
func (s Selection) Contains(name string) bool {
	return s.names[name]
}

// IsEmpty indica que nenhum município foi escolhido
func (s Selection) IsEmpty() bool {
	return len(s.names) == 0
}

// Matches aplica a seleção a uma publicação; seleção vazia aceita tudo
func (s Selection) Matches(p Permit) bool {
	return s.IsEmpty() || s.names[p.Municipality]
}

// Names retorna os municípios selecionados em ordem alfabética
func (s Selection) Names() []string {
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len retorna quantos municípios estão selecionados
func (s Selection) Len() int {
	return len(s.names)
}

func (s Selection) clone() Selection {
	next := Selection{names: make(map[string]bool, len(s.names)+1)}
	for n := range s.names {
		next.names[n] = true
	}
	return next
}
