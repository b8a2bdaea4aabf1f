package services

import (
	"context"
	"fmt"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/search"
)

const (
	// PreviewsPerColumn limita os cartões exibidos em cada coluna
	PreviewsPerColumn = 3
	// RecentLimit limita a lista de publicações recentes
	RecentLimit = 5
)

// boardTitles são os títulos das colunas, na ordem de models.PermitStatuses
var boardTitles = map[models.PermitStatus]string{
	models.StatusInReview: "Ingediend",
	models.StatusPending:  "In behandeling",
	models.StatusApproved: "Goedgekeurd",
	models.StatusRejected: "Afgewezen",
}

// StatusBoardService monta o quadro de status sobre o resultado da busca
type StatusBoardService struct {
	search *search.Service
}

// NewStatusBoardService cria um novo serviço de quadro de status
func NewStatusBoardService(searchService *search.Service) *StatusBoardService {
	return &StatusBoardService{search: searchService}
}

// GetDashboard aplica os mesmos filtros da busca e agrupa por situação.
// O filtro de status é ignorado: o quadro sempre mostra as quatro colunas.
func (s *StatusBoardService) GetDashboard(ctx context.Context, req models.SearchRequest) (*models.Dashboard, error) {
	req.Status = string(models.StatusAll)

	resp, err := s.search.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar publicações do quadro: %w", err)
	}

	return BuildDashboard(resp.Results), nil
}

// BuildDashboard agrupa publicações já ordenadas (mais recente primeiro)
func BuildDashboard(list []models.Permit) *models.Dashboard {
	board := &models.Dashboard{
		Columns: make([]models.BoardColumn, 0, len(models.PermitStatuses)),
		Totals:  make(map[models.PermitStatus]int, len(models.PermitStatuses)),
		Total:   len(list),
	}

	byStatus := make(map[models.PermitStatus][]models.Permit)
	for _, p := range list {
		byStatus[p.Status] = append(byStatus[p.Status], p)
	}

	for _, status := range models.PermitStatuses {
		items := byStatus[status]
		previews := items
		if len(previews) > PreviewsPerColumn {
			previews = previews[:PreviewsPerColumn]
		}

		board.Columns = append(board.Columns, models.BoardColumn{
			Status:   status,
			Title:    boardTitles[status],
			Count:    len(items),
			Previews: append([]models.Permit{}, previews...),
		})
		board.Totals[status] = len(items)
	}

	recent := list
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	board.Recent = append([]models.Permit{}, recent...)

	return board
}
