package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	source  permits.Source
	engine  *reconcile.Engine
	version string
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(source permits.Source, engine *reconcile.Engine, version string) *HealthHandler {
	return &HealthHandler{
		source:  source,
		engine:  engine,
		version: version,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a fonte de publicações responde
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.source.Ping(ctx); err != nil {
		response.Checks["permit_source"] = "failed"
		response.Status = "not_ready"
		response.Error = "Fonte de publicações indisponível"
	} else {
		response.Checks["permit_source"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a fonte de publicações e o vocabulário carregado (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.source.Ping(ctx); err != nil {
		response.Checks["permit_source"] = "failed"
		response.Status = "unhealthy"
		response.Error = err.Error()
	} else {
		response.Checks["permit_source"] = "ok"
	}

	if h.engine.Vocabulary().Len() > 0 {
		response.Checks["vocabulary"] = "ok"
	} else {
		response.Checks["vocabulary"] = "empty"
		response.Status = "unhealthy"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
