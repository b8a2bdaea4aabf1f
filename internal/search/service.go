// Package search monta a busca de publicações: expande o texto digitado pelo
// vocabulário antigo/novo, aplica os filtros e consulta a fonte configurada.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/observability"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
	"github.com/brabant-dados/app-vergunningen-search/internal/search/query"
)

// Service executa buscas de publicações
type Service struct {
	source   permits.Source
	parser   *query.Parser
	expander *query.Expander
	analyzer *query.Analyzer
	cache    *SearchCache
	metrics  *observability.Metrics
}

// Option configura o Service
type Option func(*Service)

// WithAnalyzer liga a inferência de categoria por LLM
func WithAnalyzer(a *query.Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

// WithCache troca o cache padrão (nil desliga o cache)
func WithCache(c *SearchCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithMetrics registra as expansões nas métricas
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService cria o serviço de busca
func NewService(source permits.Source, engine *reconcile.Engine, opts ...Option) *Service {
	s := &Service{
		source:   source,
		parser:   query.NewParser(),
		expander: query.NewExpander(engine),
		cache:    NewSearchCache(2*time.Minute, 500),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Source retorna a fonte de publicações
func (s *Service) Source() permits.Source {
	return s.source
}

// Search executa a busca com filtros
func (s *Service) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "Search.Service")
	defer span.End()

	filters := req.Filters()
	if err := filters.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	selection, err := models.ParseSelection(req.Municipalities)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.GenerateKey(filters, selection)
		if cached := s.cache.Get(cacheKey); cached != nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return cached, nil
		}
	}

	parsed := s.parser.Parse(req.Query)
	expanded := s.expander.Expand(parsed)
	s.recordExpansion(parsed, expanded)

	q := permits.Query{
		Terms:           expanded.Terms,
		PermitTypeTerms: s.expander.PermitTypeTerms(filters.PermitType),
		Filters:         filters,
		Municipalities:  selection,
	}

	resp := &models.SearchResponse{
		Query: models.QueryInfo{
			Original: req.Query,
			Expanded: expanded.Expanded,
			Terms:    expanded.Terms,
		},
		Filters:        filters,
		Municipalities: selection.Names(),
	}

	if expanded.PassThrough && filters.PermitType == models.PermitTypeAll && s.analyzer.Enabled() {
		inferred, err := s.analyzer.InferPermitType(ctx, parsed)
		if err != nil {
			zap.L().Warn("inferência de categoria falhou", zap.Error(err))
		}
		if inferred != nil {
			q.Terms = mergeTerms(q.Terms, s.expander.PermitTypeTerms(inferred.PermitType))
			resp.InferredPermitType = inferred.PermitType
			resp.Query.Terms = q.Terms
			span.SetAttributes(attribute.String("inferred_permit_type", string(inferred.PermitType)))
		}
	}

	results, err := s.source.Search(ctx, q)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrSearchCanceled, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}

	permits.SortByPublication(results)
	resp.Results = results
	resp.Total = len(results)

	span.SetAttributes(
		attribute.Int("terms", len(q.Terms)),
		attribute.Int("results", resp.Total),
	)

	if s.cache != nil {
		s.cache.Set(cacheKey, resp)
	}

	return resp, nil
}

// Get busca uma publicação pelo id
func (s *Service) Get(ctx context.Context, id string) (*models.Permit, error) {
	p, err := s.source.Get(ctx, id)
	if err != nil {
		if errors.Is(err, permits.ErrPermitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceFailed, err)
	}
	return p, nil
}

func (s *Service) recordExpansion(parsed *query.ParsedQuery, expanded *query.ExpandedQuery) {
	switch {
	case parsed.IsEmpty():
		s.metrics.RecordTerminology("expand", observability.OutcomeEmpty)
	case expanded.PassThrough:
		s.metrics.RecordTerminology("expand", observability.OutcomePassThrough)
	default:
		s.metrics.RecordTerminology("expand", observability.OutcomeExpanded)
	}
}

// mergeTerms une as listas mantendo a ordem e sem repetir termos
func mergeTerms(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, t := range list {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
