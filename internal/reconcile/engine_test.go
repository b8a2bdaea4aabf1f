package reconcile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

func newDefaultEngine() *Engine {
	return NewEngine(vocabulary.Default())
}

func allTerms(v *vocabulary.Vocabulary) []string {
	var terms []string
	for _, g := range v.Groups() {
		terms = append(terms, g.Legacy...)
		terms = append(terms, g.Current...)
	}
	return terms
}

func TestSuggestions(t *testing.T) {
	e := newDefaultEngine()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "kap inclui família antiga e nova",
			query: "kap",
			want:  []string{"kapvergunning", "omgevingsplanactiviteit (kap)", "kap", "bomenkap", "kappen"},
		},
		{
			name:  "maiúsculas são ignoradas",
			query: "SLOOP",
			want:  []string{"sloopvergunning", "sloopactiviteit", "sloopwerkzaamheden", "slopen", "omgevingsvergunning"},
		},
		{
			name:  "termo novo traz os antigos do grupo",
			query: "monument",
			want:  []string{"monumentenvergunning", "rijksmonumentenactiviteit", "monument"},
		},
		{
			name:  "sem correspondência",
			query: "dakkapel",
			want:  []string{},
		},
		{
			name:  "query vazia casa com tudo",
			query: "",
			want: []string{
				"bouwvergunning", "bouwactiviteit", "bouwactiviteit (omgevingsplan)", "bouwwerk",
				"sloopvergunning", "sloopactiviteit", "sloopwerkzaamheden", "slopen",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Suggestions(tt.query))
		})
	}
}

func TestSuggestionsCappedAtEight(t *testing.T) {
	e := newDefaultEngine()

	got := e.Suggestions("vergunning")
	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, []string{
		"bouwvergunning", "bouwactiviteit", "bouwactiviteit (omgevingsplan)",
		"sloopvergunning", "sloopactiviteit", "sloopwerkzaamheden",
		"kapvergunning", "omgevingsplanactiviteit (kap)",
	}, got)
}

func TestSuggestionsCustomLimit(t *testing.T) {
	e := NewEngine(vocabulary.Default(), WithMaxSuggestions(3))
	assert.Len(t, e.Suggestions("activiteit"), 3)
}

func TestSuggestionsProperties(t *testing.T) {
	e := newDefaultEngine()
	v := e.Vocabulary()

	queries := append(allTerms(v), "a", "e", "ing", "activiteit", "vergunning", "omgevings", "xyz")

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := e.Suggestions(q)
			assert.LessOrEqual(t, len(got), MaxSuggestions)

			seen := make(map[string]bool)
			for _, s := range got {
				assert.False(t, seen[s], "sugestão repetida %q", s)
				seen[s] = true
			}
		})
	}
}

func TestSuggestionsRoundTripCoverage(t *testing.T) {
	e := newDefaultEngine()

	for i, g := range e.Vocabulary().Groups() {
		for _, legacy := range g.Legacy {
			t.Run(fmt.Sprintf("grupo %d antigo %s", i, legacy), func(t *testing.T) {
				assert.True(t, containsAny(e.Suggestions(legacy), g.Current))
			})
		}
		for _, current := range g.Current {
			t.Run(fmt.Sprintf("grupo %d novo %s", i, current), func(t *testing.T) {
				assert.True(t, containsAny(e.Suggestions(current), g.Legacy))
			})
		}
	}
}

func containsAny(list, candidates []string) bool {
	for _, item := range list {
		for _, c := range candidates {
			if item == c {
				return true
			}
		}
	}
	return false
}

func TestSuggestionsExpandGroupOfAlreadyListedTerm(t *testing.T) {
	v := vocabulary.MustNew([]vocabulary.TermGroup{
		{Legacy: []string{"bouwvergunning"}, Current: []string{"bouwactiviteit"}},
		{Legacy: []string{"omgevingsvergunning"}, Current: []string{"bouwactiviteit"}},
	})
	e := NewEngine(v)

	assert.Equal(t,
		[]string{"bouwactiviteit", "bouwvergunning", "omgevingsvergunning"},
		e.Suggestions("bouwact"),
	)
}

func TestClassify(t *testing.T) {
	e := newDefaultEngine()

	tests := []struct {
		term string
		want Classification
	}{
		{"kapvergunning", Classification{IsLegacy: true}},
		{"KAPVERGUNNING", Classification{IsLegacy: true}},
		{"Omgevingsplanactiviteit (kap)", Classification{IsCurrent: true}},
		{"kapvergun", Classification{}},
		{"", Classification{}},
		{"zzz-unknown-zzz", Classification{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			first := e.Classify(tt.term)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, e.Classify(tt.term))
		})
	}
}

func TestClassifyIsIdempotentForEveryTerm(t *testing.T) {
	e := newDefaultEngine()
	for _, term := range allTerms(e.Vocabulary()) {
		c := e.Classify(term)
		assert.Equal(t, c, e.Classify(term))
		assert.True(t, c.IsLegacy || c.IsCurrent, term)
	}
}

func TestTranslate(t *testing.T) {
	e := newDefaultEngine()

	assert.Equal(t, []string{"sloopactiviteit", "sloopwerkzaamheden"}, e.TranslateToCurrent("Sloopvergunning"))
	assert.Equal(t, []string{"dakkapel"}, e.TranslateToCurrent("dakkapel"))
	assert.Equal(t, []string{"kapvergunning", "bomenkap", "kappen"}, e.TranslateToLegacy("KAP"))
	assert.Equal(t, []string{"Dakkapel"}, e.TranslateToLegacy("Dakkapel"))
}

func TestExpandQuery(t *testing.T) {
	e := newDefaultEngine()

	tests := []struct {
		name string
		term string
		want string
	}{
		{
			name: "termo desconhecido passa direto",
			term: "zzz-unknown-zzz",
			want: `"zzz-unknown-zzz"`,
		},
		{
			name: "termo antigo",
			term: "kapvergunning",
			want: `"kapvergunning" OR "omgevingsplanactiviteit (kap)" OR "kap"`,
		},
		{
			name: "termo guarda-chuva",
			term: "omgevingsvergunning",
			want: `"omgevingsvergunning" OR "omgevingsplanactiviteit" OR "bouwactiviteit" OR "sloopactiviteit"`,
		},
		{
			name: "termo novo preserva a grafia original",
			term: "Kap",
			want: `"Kap" OR "kapvergunning" OR "bomenkap" OR "kappen"`,
		},
		{
			name: "string vazia",
			term: "",
			want: `""`,
		},
		{
			name: "aspas são escapadas",
			term: `dak"kapel`,
			want: `"dak\"kapel"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExpandQuery(tt.term))
		})
	}
}

func TestExpandTermsUmbrellaHasNoDuplicates(t *testing.T) {
	e := newDefaultEngine()

	terms := e.ExpandTerms("omgevingsvergunning")
	require.Len(t, terms, 4)
	assert.Equal(t, "omgevingsvergunning", terms[0])
	assert.ElementsMatch(t, []string{"omgevingsplanactiviteit", "bouwactiviteit", "sloopactiviteit"}, terms[1:])
}

func TestEngineWithSubstituteVocabulary(t *testing.T) {
	v := vocabulary.MustNew([]vocabulary.TermGroup{
		{Legacy: []string{"uitwegvergunning"}, Current: []string{"uitritactiviteit"}},
	})
	e := NewEngine(v)

	assert.Equal(t, []string{"uitwegvergunning", "uitritactiviteit"}, e.Suggestions("uit"))
	assert.Equal(t, `"uitritactiviteit" OR "uitwegvergunning"`, e.ExpandQuery("uitritactiviteit"))
	assert.Equal(t, Classification{}, e.Classify("kapvergunning"))
}
