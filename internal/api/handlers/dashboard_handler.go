package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/services"
)

// DashboardHandler serve o quadro de status
type DashboardHandler struct {
	boardService *services.StatusBoardService
}

// NewDashboardHandler cria um novo handler do quadro
func NewDashboardHandler(boardService *services.StatusBoardService) *DashboardHandler {
	return &DashboardHandler{boardService: boardService}
}

// Get godoc
// @Summary Quadro de status
// @Description Agrupa as publicações filtradas em colunas por situação. O parâmetro status é ignorado.
// @Tags dashboard
// @Produce json
// @Param q query string false "Texto da busca"
// @Param date_from query string false "Data inicial (YYYY-MM-DD)"
// @Param date_to query string false "Data final (YYYY-MM-DD)"
// @Param permit_type query string false "all, bouw, sloop, kap, aanleg ou monument"
// @Param municipalities query string false "Municípios separados por vírgula ou 'all'"
// @Success 200 {object} models.Dashboard
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}

	board, err := h.boardService.GetDashboard(c.Request.Context(), req)
	if err != nil {
		writeSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}
