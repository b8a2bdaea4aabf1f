package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typesense/typesense-go/v3/typesense"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
)

func TestBuildFilterBy(t *testing.T) {
	tests := []struct {
		name    string
		filters models.SearchFilters
		sel     models.Selection
		want    string
	}{
		{"sem filtros", models.DefaultFilters(), models.NewSelection(), ""},
		{"status", models.DefaultFilters().WithStatus(models.StatusPending), models.NewSelection(), "status:=pending"},
		{
			"datas",
			models.DefaultFilters().WithDateRange("2025-01-01", "2025-01-31"),
			models.NewSelection(),
			"publication_ts:>=1735689600 && publication_ts:<=1738281600",
		},
		{
			"municípios com vírgula",
			models.DefaultFilters(),
			models.NewSelection("Oss", "Nuenen, Gerwen en Nederwetten"),
			"municipality:=[`Nuenen, Gerwen en Nederwetten`,`Oss`]",
		},
		{"todos os municípios não filtram", models.DefaultFilters(), models.NewSelection().SelectAll(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilterBy(tt.filters, tt.sel))
		})
	}
}

// fakeTypesense responde multi_search com os mesmos documentos para cada busca
func fakeTypesense(t *testing.T, docs []document, searches *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/health":
			_, _ = io.WriteString(w, `{"ok":true}`)

		case r.URL.Path == "/multi_search":
			var body struct {
				Searches []map[string]any `json:"searches"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			*searches = len(body.Searches)

			hits := make([]map[string]any, 0, len(docs))
			for _, d := range docs {
				hits = append(hits, map[string]any{"document": d})
			}
			results := make([]map[string]any, len(body.Searches))
			for i := range results {
				results[i] = map[string]any{"found": len(docs), "hits": hits}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"results": results})

		case strings.HasPrefix(r.URL.Path, "/collections/vergunningen/documents/"):
			id := strings.TrimPrefix(r.URL.Path, "/collections/vergunningen/documents/")
			for _, d := range docs {
				if d.ID == id {
					_ = json.NewEncoder(w).Encode(d)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"message":"Could not find a document with id"}`)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testDocs() []document {
	return []document{
		toDocument(models.Permit{ID: "a", PublicationDate: "2025-06-17", Municipality: "Tilburg", ActivityType: "Bouwactiviteit (omgevingsplan)", ProjectDescription: "Verbouwen van garage", Status: models.StatusApproved}),
		toDocument(models.Permit{ID: "b", PublicationDate: "2025-04-20", Municipality: "Breda", ActivityType: "Omgevingsplanactiviteit", ProjectDescription: "Kappen van 3 bomen", Status: models.StatusRejected}),
	}
}

func TestTypesenseSourceSearch(t *testing.T) {
	var searches int
	srv := fakeTypesense(t, testDocs(), &searches)
	defer srv.Close()

	client := typesense.NewClient(typesense.WithServer(srv.URL), typesense.WithAPIKey("test"))
	src := NewTypesenseSource(client, "vergunningen")

	got, err := src.Search(context.Background(), permits.Query{
		Terms:   []string{"kapvergunning", "omgevingsplanactiviteit (kap)", "kap"},
		Filters: models.DefaultFilters(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, searches)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, models.StatusRejected, got[0].Status)

	got, err = src.Search(context.Background(), permits.Query{Filters: models.DefaultFilters()})
	require.NoError(t, err)
	assert.Equal(t, 1, searches)
	assert.Len(t, got, 2)
}

func TestTypesenseSourceGetAndPing(t *testing.T) {
	var searches int
	srv := fakeTypesense(t, testDocs(), &searches)
	defer srv.Close()

	client := typesense.NewClient(typesense.WithServer(srv.URL), typesense.WithAPIKey("test"))
	src := NewTypesenseSource(client, "vergunningen")
	ctx := context.Background()

	p, err := src.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Tilburg", p.Municipality)
	assert.Equal(t, "2025-06-17", p.PublicationDate)

	_, err = src.Get(ctx, "zzz")
	assert.ErrorIs(t, err, permits.ErrPermitNotFound)

	assert.NoError(t, src.Ping(ctx))
}

func TestToDocumentTimestamp(t *testing.T) {
	doc := toDocument(models.Permit{ID: "x", PublicationDate: "2025-01-01"})
	assert.Equal(t, int64(1735689600), doc.PublicationTS)
	assert.Equal(t, "x", doc.permit().ID)
}

func TestTypesenseSourceSearchInfixAndPagination(t *testing.T) {
	first := toDocument(models.Permit{ID: "p1", PublicationDate: "2025-05-01", Municipality: "Oss", ActivityType: "Omgevingsplanactiviteit", ProjectDescription: "Bomenkapaanvraag langs de Maas", Status: models.StatusInReview})
	rest := []document{
		toDocument(models.Permit{ID: "p2", PublicationDate: "2025-05-02", Municipality: "Oss", ActivityType: "Kap", Status: models.StatusInReview}),
		toDocument(models.Permit{ID: "p3", PublicationDate: "2025-05-03", Municipality: "Oss", ActivityType: "Bouwactiviteit", ProjectDescription: "Dakkapel", Status: models.StatusInReview}),
		toDocument(models.Permit{ID: "p4", PublicationDate: "2025-05-04", Municipality: "Oss", ActivityType: "Sloopactiviteit", Status: models.StatusInReview}),
	}

	var infix []any
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/multi_search":
			var body struct {
				Searches []map[string]any `json:"searches"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			for _, s := range body.Searches {
				infix = append(infix, s["infix"])
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{
				{"found": 300, "hits": []map[string]any{{"document": first}}},
			}})

		case "/collections/vergunningen/documents/search":
			pages = append(pages, r.URL.Query().Get("page"))
			assert.Equal(t, "always,always,always", r.URL.Query().Get("infix"))
			hits := make([]map[string]any, 0, len(rest))
			for _, d := range rest {
				hits = append(hits, map[string]any{"document": d})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"found": 300, "hits": hits})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := typesense.NewClient(typesense.WithServer(srv.URL), typesense.WithAPIKey("test"))
	src := NewTypesenseSource(client, "vergunningen")

	got, err := src.Search(context.Background(), permits.Query{
		Terms:   []string{"kap"},
		Filters: models.DefaultFilters(),
	})
	require.NoError(t, err)

	assert.Equal(t, []any{"always,always,always"}, infix)
	assert.Equal(t, []string{"2"}, pages)

	ids := make([]string, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	// p4 veio do Typesense mas não contém "kap"
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids)
}

func TestSchemaEnablesInfix(t *testing.T) {
	schema := NewTypesenseSource(nil, "vergunningen").Schema()

	infix := map[string]bool{}
	for _, f := range schema.Fields {
		infix[f.Name] = f.Infix != nil && *f.Infix
	}
	assert.True(t, infix["activity_type"])
	assert.True(t, infix["project_description"])
	assert.True(t, infix["address"])
	assert.False(t, infix["municipality"])
}
