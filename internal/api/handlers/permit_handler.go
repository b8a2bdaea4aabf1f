package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/search"
)

// PermitHandler gerencia a busca de publicações
type PermitHandler struct {
	searchService *search.Service
}

// NewPermitHandler cria um novo handler de publicações
func NewPermitHandler(searchService *search.Service) *PermitHandler {
	return &PermitHandler{searchService: searchService}
}

// Search godoc
// @Summary Busca publicações de licenças
// @Description O texto é expandido pelo vocabulário antigo/novo antes da busca, então "kapvergunning" também encontra publicações marcadas como "omgevingsplanactiviteit (kap)".
// @Tags vergunningen
// @Produce json
// @Param q query string false "Texto da busca"
// @Param date_from query string false "Data inicial (YYYY-MM-DD, inclusiva)"
// @Param date_to query string false "Data final (YYYY-MM-DD, inclusiva)"
// @Param status query string false "all, approved, pending, rejected ou in-review" default(all)
// @Param permit_type query string false "all, bouw, sloop, kap, aanleg ou monument" default(all)
// @Param municipalities query string false "Municípios separados por vírgula ou 'all'"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /api/v1/vergunningen [get]
func (h *PermitHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		writeSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Busca uma publicação pelo ID
// @Tags vergunningen
// @Produce json
// @Param id path string true "ID da publicação"
// @Success 200 {object} models.Permit
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/vergunningen/{id} [get]
func (h *PermitHandler) Get(c *gin.Context) {
	permit, err := h.searchService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeSearchError(c, err)
		return
	}

	c.JSON(http.StatusOK, permit)
}
