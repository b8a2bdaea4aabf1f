package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
)

// ContentGenerator é a parte do cliente Gemini usada pelo analyzer
// (*genai.Models satisfaz a interface)
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// PermitTypeAnalysis é a categoria inferida pelo LLM para uma query livre
type PermitTypeAnalysis struct {
	PermitType models.PermitType `json:"permit_type"`
	Confidence float64           `json:"confidence"`
	Reasoning  string            `json:"reasoning,omitempty"`
}

// Analyzer infere a categoria de licença de queries que o vocabulário não reconhece
type Analyzer struct {
	generator     ContentGenerator
	model         string
	minConfidence float64

	mu        sync.Mutex
	cache     map[string]*PermitTypeAnalysis
	cacheTime map[string]time.Time
	cacheTTL  time.Duration
}

// NewAnalyzer cria um novo analyzer; com client nil a inferência fica desligada
func NewAnalyzer(client *genai.Client, model string, minConfidence float64) *Analyzer {
	var generator ContentGenerator
	if client != nil {
		generator = client.Models
	}
	return NewAnalyzerWithGenerator(generator, model, minConfidence)
}

// NewAnalyzerWithGenerator cria um analyzer sobre qualquer ContentGenerator
func NewAnalyzerWithGenerator(generator ContentGenerator, model string, minConfidence float64) *Analyzer {
	return &Analyzer{
		generator:     generator,
		model:         model,
		minConfidence: minConfidence,
		cache:         make(map[string]*PermitTypeAnalysis),
		cacheTime:     make(map[string]time.Time),
		cacheTTL:      5 * time.Minute,
	}
}

// Enabled indica se há um modelo configurado
func (a *Analyzer) Enabled() bool {
	return a != nil && a.generator != nil
}

// getPermitTypeSchema retorna o schema JSON para saída estruturada
func getPermitTypeSchema() *genai.Schema {
	enum := []string{string(models.PermitTypeAll)}
	for _, pt := range models.PermitTypes {
		enum = append(enum, string(pt))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"permit_type": {
				Type:        genai.TypeString,
				Description: "Categoria da licença",
				Enum:        enum,
			},
			"confidence": {
				Type:        genai.TypeNumber,
				Description: "Confiança entre 0 e 1",
			},
			"reasoning": {
				Type: genai.TypeString,
			},
		},
		Required: []string{"permit_type", "confidence"},
	}
}

// InferPermitType pergunta ao modelo qual categoria corresponde à query.
// Retorna (nil, nil) quando desligado, quando só restam stopwords, quando o
// modelo falha ou quando a confiança fica abaixo do mínimo: a busca segue sem categoria.
func (a *Analyzer) InferPermitType(ctx context.Context, parsed *ParsedQuery) (*PermitTypeAnalysis, error) {
	if !a.Enabled() || parsed == nil || len(parsed.Tokens) == 0 {
		return nil, nil
	}
	query := parsed.Cleaned

	// queries que diferem só em stopwords, acentos ou pontuação dividem a entrada
	key := strings.Join(parsed.Tokens, " ")
	if cached, ok := a.getFromCache(key); ok {
		return a.accept(cached), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`Classifique esta busca em publicações de licenças (vergunningen) de municípios de Noord-Brabant.

Query: "%s"

Categorias:
- bouw: construção, reforma, ampliação (bouwactiviteit)
- sloop: demolição (sloopactiviteit)
- kap: corte de árvores (bomenkap)
- aanleg: obras no terreno, drenagem, pavimentação (aanlegactiviteit)
- monument: alterações em monumentos (rijksmonumentenactiviteit)
- all: nenhuma categoria clara

Retorne a categoria e a confiança entre 0 e 1.`, query)

	content := genai.NewContentFromText(prompt, genai.RoleUser)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   getPermitTypeSchema(),
	}

	resp, err := a.generator.GenerateContent(ctx, a.model, []*genai.Content{content}, config)
	if err != nil {
		zap.L().Warn("erro ao inferir categoria", zap.String("query", query), zap.Error(err))
		return nil, nil
	}

	text := responseText(resp)
	if text == "" {
		return nil, nil
	}

	var analysis PermitTypeAnalysis
	if err := json.Unmarshal([]byte(extractJSON(text)), &analysis); err != nil {
		zap.L().Warn("erro ao parsear categoria inferida", zap.String("resposta", text), zap.Error(err))
		return nil, nil
	}

	a.setCache(key, &analysis)

	return a.accept(&analysis), nil
}

func (a *Analyzer) accept(analysis *PermitTypeAnalysis) *PermitTypeAnalysis {
	if analysis.PermitType == models.PermitTypeAll || !analysis.PermitType.IsValid() {
		return nil
	}
	if analysis.Confidence < a.minConfidence {
		return nil
	}
	out := *analysis
	return &out
}

func (a *Analyzer) getFromCache(key string) (*PermitTypeAnalysis, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cached, ok := a.cache[key]; ok {
		if time.Since(a.cacheTime[key]) < a.cacheTTL {
			return cached, true
		}
		delete(a.cache, key)
		delete(a.cacheTime, key)
	}
	return nil, false
}

func (a *Analyzer) setCache(key string, analysis *PermitTypeAnalysis) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cache[key] = analysis
	a.cacheTime[key] = time.Now()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

// extractJSON extrai JSON de uma resposta que pode ter markdown
func extractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+7:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if endIdx := strings.Index(s, "```"); endIdx != -1 {
			s = s[:endIdx]
		}
	}

	if idx := strings.Index(s, "{"); idx != -1 {
		s = s[idx:]
	}

	return strings.TrimSpace(s)
}
