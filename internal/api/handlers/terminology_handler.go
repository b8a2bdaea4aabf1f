package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/observability"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
)

// minSuggestionLength é o tamanho mínimo do texto para consultar sugestões
const minSuggestionLength = 2

// TerminologyHandler expõe o vocabulário antigo/novo
type TerminologyHandler struct {
	engine  *reconcile.Engine
	metrics *observability.Metrics
}

// NewTerminologyHandler cria um novo handler de terminologia
func NewTerminologyHandler(engine *reconcile.Engine, metrics *observability.Metrics) *TerminologyHandler {
	return &TerminologyHandler{
		engine:  engine,
		metrics: metrics,
	}
}

// Suggestions godoc
// @Summary Sugestões de termos
// @Description Termos do vocabulário que contêm o texto digitado, cada um seguido dos equivalentes no outro vocabulário. Textos com menos de 2 caracteres retornam lista vazia.
// @Tags terminologie
// @Produce json
// @Param q query string false "Texto digitado"
// @Success 200 {object} models.SuggestionsResponse
// @Failure 429 {object} map[string]string
// @Router /api/v1/terminologie/suggesties [get]
func (h *TerminologyHandler) Suggestions(c *gin.Context) {
	q := c.Query("q")

	resp := models.SuggestionsResponse{
		Query:       q,
		Suggestions: []models.TermSuggestion{},
	}

	if utf8.RuneCountInString(q) < minSuggestionLength {
		h.metrics.RecordTerminology("suggest", observability.OutcomeSkipped)
		c.JSON(http.StatusOK, resp)
		return
	}

	for _, term := range h.engine.Suggestions(q) {
		cls := h.engine.Classify(term)
		resp.Suggestions = append(resp.Suggestions, models.TermSuggestion{
			Term:      term,
			IsLegacy:  cls.IsLegacy,
			IsCurrent: cls.IsCurrent,
		})
	}

	if len(resp.Suggestions) == 0 {
		h.metrics.RecordTerminology("suggest", observability.OutcomeEmpty)
	} else {
		h.metrics.RecordTerminology("suggest", observability.OutcomeHit)
	}

	c.JSON(http.StatusOK, resp)
}

// Classify godoc
// @Summary Classifica um termo
// @Description Indica se o termo pertence ao vocabulário antigo (Wabo), ao novo (Omgevingswet) ou a nenhum
// @Tags terminologie
// @Produce json
// @Param term query string true "Termo"
// @Success 200 {object} models.ClassificationResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/terminologie/classificatie [get]
func (h *TerminologyHandler) Classify(c *gin.Context) {
	term, ok := requiredTerm(c)
	if !ok {
		return
	}

	cls := h.engine.Classify(term)
	h.metrics.RecordTerminology("classify", classificationOutcome(cls))

	c.JSON(http.StatusOK, models.ClassificationResponse{
		Term:      term,
		IsLegacy:  cls.IsLegacy,
		IsCurrent: cls.IsCurrent,
	})
}

// Expand godoc
// @Summary Expande um termo
// @Description Retorna o termo com as traduções nos dois sentidos e a query OR correspondente
// @Tags terminologie
// @Produce json
// @Param term query string true "Termo"
// @Success 200 {object} models.ExpansionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/terminologie/expansie [get]
func (h *TerminologyHandler) Expand(c *gin.Context) {
	term, ok := requiredTerm(c)
	if !ok {
		return
	}

	terms := h.engine.ExpandTerms(term)
	if len(terms) > 1 {
		h.metrics.RecordTerminology("expand", observability.OutcomeExpanded)
	} else {
		h.metrics.RecordTerminology("expand", observability.OutcomePassThrough)
	}

	c.JSON(http.StatusOK, models.ExpansionResponse{
		Term:  term,
		Terms: terms,
		Query: reconcile.Render(terms),
	})
}

// Groups godoc
// @Summary Tabela do vocabulário
// @Description Lista os grupos de termos antigos e seus equivalentes novos
// @Tags terminologie
// @Produce json
// @Success 200 {object} models.GroupsResponse
// @Router /api/v1/terminologie/groepen [get]
func (h *TerminologyHandler) Groups(c *gin.Context) {
	groups := h.engine.Vocabulary().Groups()

	resp := models.GroupsResponse{
		Groups: make([]models.TermGroupResponse, 0, len(groups)),
		Total:  len(groups),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, models.TermGroupResponse{
			Legacy:  g.Legacy,
			Current: g.Current,
		})
	}

	c.JSON(http.StatusOK, resp)
}

func requiredTerm(c *gin.Context) (string, bool) {
	term := c.Query("term")
	if strings.TrimSpace(term) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetro 'term' é obrigatório"})
		return "", false
	}
	return term, true
}

func classificationOutcome(cls reconcile.Classification) string {
	switch {
	case cls.IsLegacy && cls.IsCurrent:
		return observability.OutcomeBoth
	case cls.IsLegacy:
		return observability.OutcomeLegacy
	case cls.IsCurrent:
		return observability.OutcomeCurrent
	default:
		return observability.OutcomePassThrough
	}
}
