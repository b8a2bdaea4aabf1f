package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

func TestParse(t *testing.T) {
	p := NewParser()

	parsed := p.Parse("  Kappen   van één  Boom! ")
	assert.Equal(t, "Kappen van één Boom!", parsed.Cleaned)
	assert.Equal(t, []string{"kappen", "boom"}, parsed.Tokens)

	parsed = p.Parse("Omgevingsplanactiviteit (kap)")
	assert.Equal(t, "Omgevingsplanactiviteit (kap)", parsed.Cleaned)
	assert.Equal(t, []string{"omgevingsplanactiviteit", "kap"}, parsed.Tokens)

	assert.True(t, p.Parse("   ").IsEmpty())
}

func TestParseDisjunction(t *testing.T) {
	tests := []struct {
		name     string
		expanded string
		want     []string
	}{
		{"vazio", "", []string{}},
		{"um termo", `"kap"`, []string{"kap"}},
		{"três termos", `"kapvergunning" OR "omgevingsplanactiviteit (kap)" OR "kap"`, []string{"kapvergunning", "omgevingsplanactiviteit (kap)", "kap"}},
		{"aspas escapadas", `"dak\"kapel" OR "x"`, []string{`dak"kapel`, "x"}},
		{"sem aspas", "kap of bouw", []string{"kap of bouw"}},
		{"separador inválido", `"kap" AND "bouw"`, []string{`"kap" AND "bouw"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDisjunction(tt.expanded))
		})
	}
}

func TestParseDisjunctionInvertsRender(t *testing.T) {
	terms := []string{"omgevingsvergunning", `a "quoted" term`, `back\slash`, "één"}
	assert.Equal(t, terms, ParseDisjunction(reconcile.Render(terms)))
}

func TestExpander(t *testing.T) {
	e := NewExpander(reconcile.NewEngine(vocabulary.Default()))
	p := NewParser()

	expanded := e.Expand(p.Parse(" kapvergunning "))
	assert.Equal(t, `"kapvergunning" OR "omgevingsplanactiviteit (kap)" OR "kap"`, expanded.Expanded)
	assert.Equal(t, []string{"kapvergunning", "omgevingsplanactiviteit (kap)", "kap"}, expanded.Terms)
	assert.False(t, expanded.PassThrough)

	expanded = e.Expand(p.Parse("dakkapel"))
	assert.Equal(t, []string{"dakkapel"}, expanded.Terms)
	assert.True(t, expanded.PassThrough)

	expanded = e.Expand(p.Parse(""))
	assert.Empty(t, expanded.Terms)
	assert.Empty(t, expanded.Expanded)

	assert.Equal(t, []string{"sloopvergunning", "sloopactiviteit", "sloopwerkzaamheden"}, e.PermitTypeTerms(models.PermitTypeSloop))
	assert.Nil(t, e.PermitTypeTerms(models.PermitTypeAll))
}

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func TestAnalyzerInferPermitType(t *testing.T) {
	ctx := context.Background()
	p := NewParser()

	t.Run("desligado", func(t *testing.T) {
		a := NewAnalyzer(nil, "gemini", 0.7)
		assert.False(t, a.Enabled())
		got, err := a.InferPermitType(ctx, p.Parse("boom weghalen"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("categoria aceita e cacheada", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"permit_type":"kap","confidence":0.92}`}
		a := NewAnalyzerWithGenerator(gen, "gemini", 0.7)

		got, err := a.InferPermitType(ctx, p.Parse("boom weghalen"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.PermitTypeKap, got.PermitType)

		_, err = a.InferPermitType(ctx, p.Parse("Boom weghalen "))
		require.NoError(t, err)
		_, err = a.InferPermitType(ctx, p.Parse("de boom weghalen!"))
		require.NoError(t, err)
		assert.Equal(t, 1, gen.calls)
	})

	t.Run("só stopwords não chama o modelo", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"permit_type":"kap","confidence":0.92}`}
		a := NewAnalyzerWithGenerator(gen, "gemini", 0.7)

		for _, q := range []string{"van de", "het", "ik wil"} {
			got, err := a.InferPermitType(ctx, p.Parse(q))
			require.NoError(t, err)
			assert.Nil(t, got, q)
		}
		assert.Zero(t, gen.calls)
	})

	t.Run("confiança baixa", func(t *testing.T) {
		gen := &fakeGenerator{text: "```json\n{\"permit_type\":\"bouw\",\"confidence\":0.4}\n```"}
		got, err := NewAnalyzerWithGenerator(gen, "gemini", 0.7).InferPermitType(ctx, p.Parse("schuur"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("categoria all", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"permit_type":"all","confidence":0.99}`}
		got, err := NewAnalyzerWithGenerator(gen, "gemini", 0.7).InferPermitType(ctx, p.Parse("iets"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("erro do modelo não interrompe a busca", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota")}
		got, err := NewAnalyzerWithGenerator(gen, "gemini", 0.7).InferPermitType(ctx, p.Parse("schuur"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
