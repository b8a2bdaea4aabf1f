package services

import (
	"context"
	"fmt"

	"github.com/brabant-dados/app-vergunningen-search/internal/constants"
	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
)

// MunicipalityService lista o catálogo de municípios com contadores
type MunicipalityService struct {
	source permits.Source
}

// NewMunicipalityService cria um novo serviço de municípios
func NewMunicipalityService(source permits.Source) *MunicipalityService {
	return &MunicipalityService{source: source}
}

// GetMunicipalities retorna os 56 municípios na ordem do catálogo
func (s *MunicipalityService) GetMunicipalities(ctx context.Context) (*models.MunicipalitiesResponse, error) {
	counts, err := s.source.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar publicações por município: %w", err)
	}

	list := make([]models.Municipality, 0, len(constants.GemeentenNoordBrabant))
	for _, g := range constants.GemeentenNoordBrabant {
		list = append(list, models.Municipality{
			Name:        g.Name,
			Code:        g.Code,
			PermitCount: counts[g.Name],
		})
	}

	return &models.MunicipalitiesResponse{
		Municipalities: list,
		Total:          len(list),
	}, nil
}
