// Package reconcile traduz e expande termos de busca entre o vocabulário
// antigo (Wabo) e o novo (Omgevingswet), para que uma busca em qualquer um dos
// dois encontre publicações marcadas no outro.
package reconcile

import (
	"strconv"
	"strings"

	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

// MaxSuggestions é o limite padrão da lista de sugestões
const MaxSuggestions = 8

// Separator une os termos da query expandida
const Separator = " OR "

// Classification indica a qual vocabulário um termo pertence. Os dois campos
// são calculados de forma independente.
type Classification struct {
	IsLegacy  bool `json:"is_legacy"`
	IsCurrent bool `json:"is_current"`
}

// Engine não guarda estado mutável; pode ser usado por várias goroutines.
type Engine struct {
	vocab          *vocabulary.Vocabulary
	maxSuggestions int
}

// Option configura o Engine
type Option func(*Engine)

// WithMaxSuggestions altera o limite de sugestões
func WithMaxSuggestions(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSuggestions = n
		}
	}
}

// NewEngine cria um engine sobre o vocabulário informado
func NewEngine(vocab *vocabulary.Vocabulary, opts ...Option) *Engine {
	e := &Engine{
		vocab:          vocab,
		maxSuggestions: MaxSuggestions,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Vocabulary retorna o vocabulário usado pelo engine
func (e *Engine) Vocabulary() *vocabulary.Vocabulary {
	return e.vocab
}

// Suggestions retorna os termos que contêm a query, cada um seguido dos seus
// equivalentes no outro vocabulário. A ordem segue a declaração dos grupos,
// termos antigos antes dos novos, e a primeira ocorrência vence. A query
// vazia casa com todos os termos.
func (e *Engine) Suggestions(query string) []string {
	q := strings.ToLower(query)

	list := newOrderedSet()
	for _, group := range e.vocab.Groups() {
		for _, term := range group.Legacy {
			if strings.Contains(term, q) {
				list.add(term)
				list.add(group.Current...)
			}
		}
		for _, term := range group.Current {
			if strings.Contains(term, q) {
				list.add(term)
				list.add(group.Legacy...)
			}
		}
	}

	out := list.items()
	if len(out) > e.maxSuggestions {
		out = out[:e.maxSuggestions]
	}
	return out
}

// Classify verifica se o termo é antigo e/ou novo (match exato, sem diferenciar maiúsculas)
func (e *Engine) Classify(term string) Classification {
	return Classification{
		IsLegacy:  e.vocab.IsLegacy(term),
		IsCurrent: e.vocab.IsCurrent(term),
	}
}

// TranslateToCurrent retorna os termos novos de um termo antigo, ou o próprio
// termo quando não há mapeamento
func (e *Engine) TranslateToCurrent(term string) []string {
	if group, ok := e.vocab.LookupLegacy(term); ok {
		return group.Current
	}
	return []string{term}
}

// TranslateToLegacy retorna os termos antigos de um termo novo, ou o próprio
// termo quando não há mapeamento
func (e *Engine) TranslateToLegacy(term string) []string {
	if group, ok := e.vocab.LookupCurrent(term); ok {
		return group.Legacy
	}
	return []string{term}
}

// ExpandTerms junta o termo original com as traduções nos dois sentidos,
// sem repetições (comparação sem diferenciar maiúsculas) e na ordem em que aparecem
func (e *Engine) ExpandTerms(term string) []string {
	set := newOrderedSet()
	set.add(term)
	set.add(e.TranslateToCurrent(term)...)
	set.add(e.TranslateToLegacy(term)...)
	return set.items()
}

// ExpandQuery monta a disjunção de termos entre aspas, ex.:
// "kapvergunning" OR "omgevingsplanactiviteit (kap)" OR "kap"
func (e *Engine) ExpandQuery(term string) string {
	return Render(e.ExpandTerms(term))
}

// Render coloca cada termo entre aspas e une com OR
func Render(terms []string) string {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = strconv.Quote(t)
	}
	return strings.Join(quoted, Separator)
}

type orderedSet struct {
	seen  map[string]bool
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(terms ...string) {
	for _, t := range terms {
		key := strings.ToLower(t)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		s.order = append(s.order, t)
	}
}

func (s *orderedSet) items() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
