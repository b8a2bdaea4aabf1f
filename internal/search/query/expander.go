package query

import (
	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
)

// ExpandedQuery representa uma query expandida
type ExpandedQuery struct {
	Original    string   // query original
	Cleaned     string   // query limpa, usada na expansão
	Expanded    string   // disjunção entre aspas
	Terms       []string // termos da disjunção
	PassThrough bool     // nenhum termo do vocabulário reconhecido
}

// Expander expande queries com o vocabulário antigo/novo
type Expander struct {
	engine *reconcile.Engine
}

// NewExpander cria um novo expander
func NewExpander(engine *reconcile.Engine) *Expander {
	return &Expander{engine: engine}
}

// Expand monta a disjunção a partir do texto digitado. A lista de termos é
// lida de volta da string expandida, que é o contrato com a camada de busca.
func (e *Expander) Expand(parsed *ParsedQuery) *ExpandedQuery {
	result := &ExpandedQuery{
		Original: parsed.Original,
		Cleaned:  parsed.Cleaned,
		Terms:    []string{},
	}

	if parsed.IsEmpty() {
		return result
	}

	result.Expanded = e.engine.ExpandQuery(parsed.Cleaned)
	result.Terms = ParseDisjunction(result.Expanded)

	c := e.engine.Classify(parsed.Cleaned)
	result.PassThrough = !c.IsLegacy && !c.IsCurrent

	return result
}

// PermitTypeTerms expande o termo semente da categoria. "all" e categorias
// desconhecidas não geram termos.
func (e *Expander) PermitTypeTerms(pt models.PermitType) []string {
	seed, ok := pt.SeedTerm()
	if !ok {
		return nil
	}
	return ParseDisjunction(e.engine.ExpandQuery(seed))
}
