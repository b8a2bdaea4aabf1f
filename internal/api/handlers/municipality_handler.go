package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brabant-dados/app-vergunningen-search/internal/services"
)

// MunicipalityHandler lista os municípios de Noord-Brabant
type MunicipalityHandler struct {
	municipalityService *services.MunicipalityService
}

// NewMunicipalityHandler cria um novo handler de municípios
func NewMunicipalityHandler(municipalityService *services.MunicipalityService) *MunicipalityHandler {
	return &MunicipalityHandler{municipalityService: municipalityService}
}

// List godoc
// @Summary Lista os municípios
// @Description Os 56 municípios de Noord-Brabant com código CBS e quantidade de publicações
// @Tags gemeenten
// @Produce json
// @Success 200 {object} models.MunicipalitiesResponse
// @Failure 502 {object} map[string]string
// @Router /api/v1/gemeenten [get]
func (h *MunicipalityHandler) List(c *gin.Context) {
	resp, err := h.municipalityService.GetMunicipalities(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erro ao contar publicações por município"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
