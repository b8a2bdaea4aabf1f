package permits

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
)

func newFixtureSource(t *testing.T) *MemorySource {
	t.Helper()
	s, err := NewDefaultMemorySource()
	require.NoError(t, err)
	return s
}

func ids(list []models.Permit) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func TestDefaultFixture(t *testing.T) {
	s := newFixtureSource(t)
	assert.Equal(t, 12, s.Len())

	p, err := s.Get(context.Background(), "gmb-2025-245512")
	require.NoError(t, err)
	assert.Equal(t, "Slopen van bedrijfshal en twee bijgebouwen", p.ProjectDescription)

	_, err = s.Get(context.Background(), "gmb-0000-000000")
	assert.ErrorIs(t, err, ErrPermitNotFound)
}

func TestMemorySourceSearch(t *testing.T) {
	s := newFixtureSource(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "sem critérios",
			query: Query{Filters: models.DefaultFilters()},
			want:  ids(s.All()),
		},
		{
			name:  "termo no tipo de atividade",
			query: Query{Terms: []string{"bouwactiviteit"}, Filters: models.DefaultFilters()},
			want:  []string{"gmb-2025-261426", "gmb-2025-229040", "gmb-2025-264001", "gmb-2025-233450"},
		},
		{
			name:  "termo na descrição",
			query: Query{Terms: []string{"KAPPEN"}, Filters: models.DefaultFilters()},
			want:  []string{"gmb-2025-260706"},
		},
		{
			name:  "termo no endereço",
			query: Query{Terms: []string{"vestdijk"}, Filters: models.DefaultFilters()},
			want:  []string{"gmb-2025-229040"},
		},
		{
			name:  "disjunção",
			query: Query{Terms: []string{"drainage", "serre"}, Filters: models.DefaultFilters()},
			want:  []string{"gmb-2025-219934", "gmb-2025-233450"},
		},
		{
			name: "categoria sloop",
			query: Query{
				PermitTypeTerms: []string{"sloopvergunning", "sloopactiviteit", "sloopwerkzaamheden"},
				Filters:         models.DefaultFilters(),
			},
			want: []string{"gmb-2025-245512", "gmb-2025-201177"},
		},
		{
			name:  "status",
			query: Query{Filters: models.DefaultFilters().WithStatus(models.StatusInReview)},
			want:  []string{"gmb-2025-238871", "gmb-2025-264001", "gmb-2025-255090"},
		},
		{
			name:  "intervalo de datas",
			query: Query{Filters: models.DefaultFilters().WithDateRange("2025-06-01", "2025-06-12")},
			want:  []string{"gmb-2025-245512", "gmb-2025-251203", "gmb-2025-255090"},
		},
		{
			name:  "municípios",
			query: Query{Filters: models.DefaultFilters(), Municipalities: models.NewSelection("Breda")},
			want:  []string{"gmb-2025-260706", "gmb-2025-251203"},
		},
		{
			name:  "sem resultados",
			query: Query{Terms: []string{"windturbine"}, Filters: models.DefaultFilters()},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestMatchesTermsFoldsAccents(t *testing.T) {
	p := models.Permit{ProjectDescription: "Verbouwen van Café De Zwaan"}
	assert.True(t, MatchesTerms(p, []string{"cafe"}))
	assert.True(t, MatchesTerms(p, []string{"CAFÉ"}))
	assert.False(t, MatchesTerms(p, []string{"restaurant"}))
	assert.True(t, MatchesTerms(p, nil))
	assert.False(t, MatchesTerms(p, []string{""}))
}

func TestMatchesPermitTypeUsesActivityOnly(t *testing.T) {
	p := models.Permit{ActivityType: "Bouwactiviteit", ProjectDescription: "Slopen en herbouwen"}
	assert.True(t, MatchesPermitType(p, []string{"bouwvergunning", "bouwactiviteit"}))
	assert.False(t, MatchesPermitType(p, []string{"sloopvergunning", "slopen"}))
}

func TestCount(t *testing.T) {
	counts, err := newFixtureSource(t).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counts["Tilburg"])
	assert.Equal(t, 2, counts["Breda"])
	assert.Equal(t, 1, counts["Nuenen, Gerwen en Nederwetten"])
	assert.Zero(t, counts["Zundert"])
}

func TestSortByPublication(t *testing.T) {
	list := []models.Permit{
		{ID: "b", PublicationDate: "2025-01-01"},
		{ID: "c", PublicationDate: "2025-03-01"},
		{ID: "a", PublicationDate: "2025-01-01"},
	}
	SortByPublication(list)
	assert.Equal(t, []string{"c", "a", "b"}, ids(list))
}

func TestNewMemorySourceRejectsInvalidRecords(t *testing.T) {
	valid := models.Permit{
		ID:              "x-1",
		PublicationDate: "2025-01-01",
		Municipality:    "Breda",
		ActivityType:    "Bouwactiviteit",
		Status:          models.StatusApproved,
	}

	tests := []struct {
		name   string
		mutate func(p models.Permit) []models.Permit
	}{
		{"status desconhecido", func(p models.Permit) []models.Permit { p.Status = "archived"; return []models.Permit{p} }},
		{"data inválida", func(p models.Permit) []models.Permit { p.PublicationDate = "17-06-2025"; return []models.Permit{p} }},
		{"município fora do catálogo", func(p models.Permit) []models.Permit { p.Municipality = "Utrecht"; return []models.Permit{p} }},
		{"url inválida", func(p models.Permit) []models.Permit { p.URL = "not a url"; return []models.Permit{p} }},
		{"id repetido", func(p models.Permit) []models.Permit { return []models.Permit{p, p} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemorySource(tt.mutate(valid))
			assert.ErrorIs(t, err, ErrInvalidPermit)
		})
	}

	_, err := NewMemorySource([]models.Permit{valid})
	assert.NoError(t, err)
}

func TestLoadMemorySource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "permits.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","publication_date":"2025-01-02","municipality":"Oss","activity_type":"Sloopactiviteit","status":"pending"}]`), 0o644))

	s, err := LoadMemorySource(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	_, err = LoadMemorySource(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
