package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
	"github.com/brabant-dados/app-vergunningen-search/internal/search"
)

// statusClientClosedRequest é usado quando o cliente desiste da requisição
const statusClientClosedRequest = 499

// writeSearchError traduz erros da busca para status HTTP
func writeSearchError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, search.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Parâmetros inválidos",
			"details": err.Error(),
		})
	case errors.Is(err, permits.ErrPermitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Publicação não encontrada"})
	case errors.Is(err, search.ErrSearchCanceled):
		if c.Request.Context().Err() != nil {
			c.JSON(statusClientClosedRequest, gin.H{"error": "Busca cancelada"})
			return
		}
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Tempo esgotado ao consultar as publicações"})
	case errors.Is(err, search.ErrSourceFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Fonte de publicações indisponível"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno ao buscar publicações"})
	}
}
