package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
)

// queryBy são os campos onde os termos expandidos são procurados
const queryBy = "activity_type,project_description,address"

// infixMode liga a busca por substring dentro das palavras nos três campos de queryBy
const infixMode = "always,always,always"

// perPage é o máximo de documentos por página aceito pelo Typesense
const perPage = 250

// maxPages limita a paginação de um termo; acima disso o resultado é truncado com aviso
const maxPages = 20

// TypesenseSource lê publicações de uma collection Typesense mantida fora deste serviço
type TypesenseSource struct {
	client     *typesense.Client
	collection string
}

// NewTypesenseSource cria a fonte sobre a collection informada
func NewTypesenseSource(client *typesense.Client, collection string) *TypesenseSource {
	return &TypesenseSource{
		client:     client,
		collection: collection,
	}
}

// document é o formato gravado no Typesense
type document struct {
	ID                 string `json:"id"`
	PublicationDate    string `json:"publication_date"`
	PublicationTS      int64  `json:"publication_ts"`
	Municipality       string `json:"municipality"`
	CaseNumber         string `json:"case_number"`
	Address            string `json:"address"`
	ProjectDescription string `json:"project_description"`
	ActivityType       string `json:"activity_type"`
	Status             string `json:"status"`
	URL                string `json:"url"`
}

func toDocument(p models.Permit) document {
	var ts int64
	if t, err := p.PublishedAt(); err == nil {
		ts = t.Unix()
	}
	return document{
		ID:                 p.ID,
		PublicationDate:    p.PublicationDate,
		PublicationTS:      ts,
		Municipality:       p.Municipality,
		CaseNumber:         p.CaseNumber,
		Address:            p.Address,
		ProjectDescription: p.ProjectDescription,
		ActivityType:       p.ActivityType,
		Status:             string(p.Status),
		URL:                p.URL,
	}
}

func (d document) permit() models.Permit {
	return models.Permit{
		ID:                 d.ID,
		PublicationDate:    d.PublicationDate,
		Municipality:       d.Municipality,
		CaseNumber:         d.CaseNumber,
		Address:            d.Address,
		ProjectDescription: d.ProjectDescription,
		ActivityType:       d.ActivityType,
		Status:             models.PermitStatus(d.Status),
		URL:                d.URL,
	}
}

// Schema retorna o schema da collection de publicações
func (t *TypesenseSource) Schema() *api.CollectionSchema {
	return &api.CollectionSchema{
		Name: t.collection,
		Fields: []api.Field{
			{Name: "publication_date", Type: "string"},
			{Name: "publication_ts", Type: "int64", Sort: pointer.True()},
			{Name: "municipality", Type: "string", Facet: pointer.True()},
			{Name: "case_number", Type: "string", Optional: pointer.True()},
			{Name: "address", Type: "string", Optional: pointer.True(), Infix: pointer.True()},
			{Name: "project_description", Type: "string", Optional: pointer.True(), Infix: pointer.True()},
			{Name: "activity_type", Type: "string", Facet: pointer.True(), Infix: pointer.True()},
			{Name: "status", Type: "string", Facet: pointer.True()},
			{Name: "url", Type: "string", Optional: pointer.True(), Index: pointer.False()},
		},
		DefaultSortingField: pointer.String("publication_ts"),
	}
}

// EnsureCollection cria a collection se ainda não existir
func (t *TypesenseSource) EnsureCollection(ctx context.Context) error {
	if _, err := t.client.Collection(t.collection).Retrieve(ctx); err == nil {
		return nil
	}

	zap.L().Info("collection não existe, criando", zap.String("collection", t.collection))

	if _, err := t.client.Collections().Create(ctx, t.Schema()); err != nil {
		return fmt.Errorf("erro ao criar collection %s: %w", t.collection, err)
	}
	return nil
}

// Upsert grava uma publicação
func (t *TypesenseSource) Upsert(ctx context.Context, p models.Permit) error {
	_, err := t.client.Collection(t.collection).Documents().Upsert(ctx, toDocument(p), &api.DocumentIndexParameters{})
	if err != nil {
		return fmt.Errorf("erro ao gravar publicação %s: %w", p.ID, err)
	}
	return nil
}

// Search executa uma busca por termo expandido (multi_search) e une os
// resultados pelo id. A busca infix traz termos que aparecem dentro de uma
// palavra ("kap" em "bomenkapaanvraag"). A regra de substring é reaplicada no fim.
func (t *TypesenseSource) Search(ctx context.Context, q permits.Query) ([]models.Permit, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "Typesense.MultiSearch")
	defer span.End()

	terms := q.Terms
	if len(terms) == 0 {
		terms = []string{"*"}
	}
	span.SetAttributes(attribute.Int("terms", len(terms)))

	filterBy := BuildFilterBy(q.Filters, q.Municipalities)

	searches := make([]api.MultiSearchCollectionParameters, 0, len(terms))
	for _, term := range terms {
		searches = append(searches, t.searchParams(term, filterBy))
	}

	result, err := t.client.MultiSearch.Perform(ctx, &api.MultiSearchParams{}, api.MultiSearchSearchesParameter{
		Searches: searches,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("erro ao executar MultiSearch: %w", err)
	}

	merger := newHitMerger(q)
	for i, res := range result.Results {
		if res.Error != nil {
			return nil, fmt.Errorf("erro na busca do termo %q: %s", terms[i], *res.Error)
		}
		fetched := merger.add(res.Hits)

		found := 0
		if res.Found != nil {
			found = *res.Found
		}
		if found > fetched {
			if err := t.fetchRemaining(ctx, terms[i], filterBy, found, merger); err != nil {
				span.RecordError(err)
				return nil, err
			}
		}
	}

	span.SetAttributes(attribute.Int("results", len(merger.out)))
	return merger.out, nil
}

// fetchRemaining busca as páginas seguintes de um termo
func (t *TypesenseSource) fetchRemaining(ctx context.Context, term, filterBy string, found int, merger *hitMerger) error {
	pages := (found + perPage - 1) / perPage
	if pages > maxPages {
		zap.L().Warn("resultado truncado",
			zap.String("term", term),
			zap.Int("found", found),
			zap.Int("limite", maxPages*perPage))
		pages = maxPages
	}

	for page := 2; page <= pages; page++ {
		params := &api.SearchCollectionParams{
			Q:       pointer.String(term),
			QueryBy: pointer.String(queryBy),
			Page:    pointer.Int(page),
			PerPage: pointer.Int(perPage),
		}
		if term != "*" {
			params.Infix = pointer.String(infixMode)
		}
		if filterBy != "" {
			params.FilterBy = pointer.String(filterBy)
		}

		res, err := t.client.Collection(t.collection).Documents().Search(ctx, params)
		if err != nil {
			return fmt.Errorf("erro ao buscar página %d do termo %q: %w", page, term, err)
		}
		if merger.add(res.Hits) == 0 {
			break
		}
	}
	return nil
}

// hitMerger une hits de várias buscas pelo id e aplica a regra de correspondência
type hitMerger struct {
	query permits.Query
	seen  map[string]bool
	out   []models.Permit
}

func newHitMerger(q permits.Query) *hitMerger {
	return &hitMerger{
		query: q,
		seen:  make(map[string]bool),
		out:   make([]models.Permit, 0),
	}
}

// add processa uma página de hits e retorna quantos hits vieram
func (m *hitMerger) add(hits *[]api.SearchResultHit) int {
	if hits == nil {
		return 0
	}
	for _, hit := range *hits {
		if hit.Document == nil {
			continue
		}
		doc, err := decodeDocument(*hit.Document)
		if err != nil {
			zap.L().Warn("documento ignorado", zap.Error(err))
			continue
		}
		if m.seen[doc.ID] {
			continue
		}
		m.seen[doc.ID] = true

		p := doc.permit()
		if permits.Matches(p, m.query) {
			m.out = append(m.out, p)
		}
	}
	return len(*hits)
}

func (t *TypesenseSource) searchParams(term, filterBy string) api.MultiSearchCollectionParameters {
	collection := t.collection
	q := term

	params := api.MultiSearchCollectionParameters{
		Collection: &collection,
		Q:          &q,
		QueryBy:    pointer.String(queryBy),
		Page:       pointer.Int(1),
		PerPage:    pointer.Int(perPage),
	}
	if term != "*" {
		params.Infix = pointer.String(infixMode)
	}
	if filterBy != "" {
		params.FilterBy = pointer.String(filterBy)
	}
	return params
}

// Get busca uma publicação pelo id
func (t *TypesenseSource) Get(ctx context.Context, id string) (*models.Permit, error) {
	raw, err := t.client.Collection(t.collection).Document(id).Retrieve(ctx)
	if err != nil {
		var httpErr *typesense.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
			return nil, permits.ErrPermitNotFound
		}
		return nil, fmt.Errorf("erro ao buscar publicação %s: %w", id, err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	p := doc.permit()
	return &p, nil
}

// Count conta publicações por município usando facet
func (t *TypesenseSource) Count(ctx context.Context) (map[string]int, error) {
	result, err := t.client.Collection(t.collection).Documents().Search(ctx, &api.SearchCollectionParams{
		Q:              pointer.String("*"),
		FacetBy:        pointer.String("municipality"),
		MaxFacetValues: pointer.Int(100),
		PerPage:        pointer.Int(0),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao contar publicações: %w", err)
	}

	counts := make(map[string]int)
	if result.FacetCounts == nil {
		return counts, nil
	}

	raw, err := json.Marshal(*result.FacetCounts)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler facets: %w", err)
	}
	var facets []struct {
		FieldName string `json:"field_name"`
		Counts    []struct {
			Value string `json:"value"`
			Count int    `json:"count"`
		} `json:"counts"`
	}
	if err := json.Unmarshal(raw, &facets); err != nil {
		return nil, fmt.Errorf("erro ao ler facets: %w", err)
	}

	for _, facet := range facets {
		if facet.FieldName != "municipality" {
			continue
		}
		for _, c := range facet.Counts {
			counts[c.Value] = c.Count
		}
	}
	return counts, nil
}

// Ping verifica a saúde do servidor
func (t *TypesenseSource) Ping(ctx context.Context) error {
	ok, err := t.client.Health(ctx, 2*time.Second)
	if err != nil {
		return fmt.Errorf("typesense indisponível: %w", err)
	}
	if !ok {
		return errors.New("typesense indisponível")
	}
	return nil
}

// BuildFilterBy traduz status, datas e municípios para filter_by
func BuildFilterBy(f models.SearchFilters, sel models.Selection) string {
	parts := make([]string, 0, 4)

	if f.Status != "" && f.Status != models.StatusAll {
		parts = append(parts, fmt.Sprintf("status:=%s", f.Status))
	}
	if from, err := time.Parse(models.DateLayout, f.DateFrom); err == nil {
		parts = append(parts, fmt.Sprintf("publication_ts:>=%d", from.Unix()))
	}
	if to, err := time.Parse(models.DateLayout, f.DateTo); err == nil {
		parts = append(parts, fmt.Sprintf("publication_ts:<=%d", to.Unix()))
	}
	if !sel.IsEmpty() && !sel.IsAllSelected() {
		names := sel.Names()
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = "`" + n + "`"
		}
		parts = append(parts, fmt.Sprintf("municipality:=[%s]", strings.Join(quoted, ",")))
	}

	return strings.Join(parts, " && ")
}

func decodeDocument(raw any) (document, error) {
	var doc document
	data, err := json.Marshal(raw)
	if err != nil {
		return doc, fmt.Errorf("erro ao serializar documento: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("erro ao ler documento: %w", err)
	}
	return doc, nil
}
