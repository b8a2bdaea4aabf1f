package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
	"github.com/brabant-dados/app-vergunningen-search/internal/search"
	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

func fixtureSource(t *testing.T) *permits.MemorySource {
	t.Helper()
	src, err := permits.NewDefaultMemorySource()
	require.NoError(t, err)
	return src
}

func TestBuildDashboard(t *testing.T) {
	list := []models.Permit{
		{ID: "1", Status: models.StatusApproved},
		{ID: "2", Status: models.StatusApproved},
		{ID: "3", Status: models.StatusPending},
		{ID: "4", Status: models.StatusApproved},
		{ID: "5", Status: models.StatusApproved},
		{ID: "6", Status: models.StatusRejected},
	}

	board := BuildDashboard(list)

	require.Len(t, board.Columns, 4)
	assert.Equal(t, "Ingediend", board.Columns[0].Title)
	assert.Equal(t, 0, board.Columns[0].Count)
	assert.Empty(t, board.Columns[0].Previews)

	approved := board.Columns[2]
	assert.Equal(t, models.StatusApproved, approved.Status)
	assert.Equal(t, "Goedgekeurd", approved.Title)
	assert.Equal(t, 4, approved.Count)
	assert.Len(t, approved.Previews, PreviewsPerColumn)
	assert.Equal(t, "1", approved.Previews[0].ID)

	assert.Equal(t, 6, board.Total)
	assert.Equal(t, 1, board.Totals[models.StatusRejected])
	assert.Len(t, board.Recent, RecentLimit)
}

func TestGetDashboardIgnoresStatusFilter(t *testing.T) {
	svc := search.NewService(fixtureSource(t), reconcile.NewEngine(vocabulary.Default()))
	board, err := NewStatusBoardService(svc).GetDashboard(context.Background(), models.SearchRequest{Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, 12, board.Total)
	assert.Equal(t, 3, board.Totals[models.StatusInReview])
	assert.Equal(t, 3, board.Totals[models.StatusPending])
	assert.Equal(t, 4, board.Totals[models.StatusApproved])
	assert.Equal(t, 2, board.Totals[models.StatusRejected])
	assert.Equal(t, "gmb-2025-264001", board.Recent[0].ID)
}

func TestGetDashboardWithQuery(t *testing.T) {
	svc := search.NewService(fixtureSource(t), reconcile.NewEngine(vocabulary.Default()))
	board, err := NewStatusBoardService(svc).GetDashboard(context.Background(), models.SearchRequest{Query: "sloopvergunning"})
	require.NoError(t, err)

	assert.Equal(t, 2, board.Total)
	assert.Equal(t, 1, board.Totals[models.StatusApproved])
	assert.Equal(t, 1, board.Totals[models.StatusRejected])
}

func TestGetMunicipalities(t *testing.T) {
	resp, err := NewMunicipalityService(fixtureSource(t)).GetMunicipalities(context.Background())
	require.NoError(t, err)

	require.Equal(t, 56, resp.Total)
	assert.Equal(t, "Alphen-Chaam", resp.Municipalities[0].Name)

	byName := make(map[string]models.Municipality)
	for _, m := range resp.Municipalities {
		byName[m.Name] = m
	}
	assert.Equal(t, 2, byName["Eindhoven"].PermitCount)
	assert.Equal(t, "GM0772", byName["Eindhoven"].Code)
	assert.Zero(t, byName["Zundert"].PermitCount)
}
