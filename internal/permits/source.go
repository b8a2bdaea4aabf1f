// Package permits define de onde vêm as publicações de licenças e como uma
// busca expandida é aplicada a elas.
package permits

import (
	"context"
	"errors"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
)

var (
	ErrPermitNotFound = errors.New("publicação não encontrada")
	ErrInvalidPermit  = errors.New("publicação inválida")
)

// Query é uma busca já expandida pelo vocabulário
type Query struct {
	// Terms é a disjunção do texto digitado; vazio aceita tudo
	Terms []string
	// PermitTypeTerms é a disjunção da categoria; vazio aceita tudo
	PermitTypeTerms []string
	Filters         models.SearchFilters
	Municipalities  models.Selection
}

// Source fornece publicações. As implementações não alteram os registros devolvidos.
type Source interface {
	Search(ctx context.Context, q Query) ([]models.Permit, error)
	Get(ctx context.Context, id string) (*models.Permit, error)
	// Count retorna o total de publicações por município
	Count(ctx context.Context) (map[string]int, error)
	Ping(ctx context.Context) error
}
