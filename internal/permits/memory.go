package permits

import (
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/utils"
)

//go:embed data/permits.json
var fixture []byte

var validate = validator.New()

// MemorySource serve um conjunto fixo de publicações carregado na inicialização
type MemorySource struct {
	permits []models.Permit
	byID    map[string]int
}

// NewMemorySource cria a fonte a partir de uma lista já carregada. Os registros
// são validados e a descrição perde a formatação markdown.
func NewMemorySource(list []models.Permit) (*MemorySource, error) {
	s := &MemorySource{
		permits: make([]models.Permit, 0, len(list)),
		byID:    make(map[string]int, len(list)),
	}

	for i, p := range list {
		if err := validate.Struct(p); err != nil {
			return nil, eris.Wrapf(ErrInvalidPermit, "registro %d (%s): %v", i, p.ID, err)
		}
		if _, ok := models.CanonicalMunicipality(p.Municipality); !ok {
			return nil, eris.Wrapf(ErrInvalidPermit, "registro %d (%s): município %q fora do catálogo", i, p.ID, p.Municipality)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, eris.Wrapf(ErrInvalidPermit, "id repetido %s", p.ID)
		}

		p.ProjectDescription = utils.StripMarkdown(p.ProjectDescription)
		s.byID[p.ID] = len(s.permits)
		s.permits = append(s.permits, p)
	}

	return s, nil
}

// NewDefaultMemorySource usa as publicações embutidas no binário
func NewDefaultMemorySource() (*MemorySource, error) {
	return ParseMemorySource(fixture)
}

// LoadMemorySource lê as publicações de um arquivo JSON
func LoadMemorySource(path string) (*MemorySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "erro ao ler publicações %s", path)
	}
	s, err := ParseMemorySource(data)
	if err != nil {
		return nil, eris.Wrapf(err, "publicações %s", path)
	}
	return s, nil
}

// ParseMemorySource decodifica uma lista JSON de publicações
func ParseMemorySource(data []byte) (*MemorySource, error) {
	var list []models.Permit
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, eris.Wrap(err, "json inválido")
	}
	return NewMemorySource(list)
}

// Search aplica a query a todas as publicações
func (s *MemorySource) Search(ctx context.Context, q Query) ([]models.Permit, error) {
	results := make([]models.Permit, 0)
	for _, p := range s.permits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if Matches(p, q) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Get busca uma publicação pelo id
func (s *MemorySource) Get(ctx context.Context, id string) (*models.Permit, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, ErrPermitNotFound
	}
	p := s.permits[idx]
	return &p, nil
}

// Count retorna o total de publicações por município
func (s *MemorySource) Count(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, p := range s.permits {
		counts[p.Municipality]++
	}
	return counts, nil
}

// Ping sempre responde; os dados estão em memória
func (s *MemorySource) Ping(ctx context.Context) error {
	return nil
}

// All retorna uma cópia de todas as publicações na ordem do arquivo
func (s *MemorySource) All() []models.Permit {
	out := make([]models.Permit, len(s.permits))
	copy(out, s.permits)
	return out
}

// Len retorna o número de publicações
func (s *MemorySource) Len() int {
	return len(s.permits)
}
