package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/brabant-dados/app-vergunningen-search/internal/api/handlers"
	"github.com/brabant-dados/app-vergunningen-search/internal/config"
	middlewares "github.com/brabant-dados/app-vergunningen-search/internal/middleware"
	"github.com/brabant-dados/app-vergunningen-search/internal/observability"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
	"github.com/brabant-dados/app-vergunningen-search/internal/search"
	"github.com/brabant-dados/app-vergunningen-search/internal/services"
)

// Dependencies são os serviços já construídos que as rotas expõem
type Dependencies struct {
	Engine  *reconcile.Engine
	Search  *search.Service
	Metrics *observability.Metrics
}

func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.Tracing(),
		middlewares.Metrics(deps.Metrics),
		middlewares.AccessLog(),
		corsMiddleware(),
	)

	source := deps.Search.Source()

	terminologyHandler := handlers.NewTerminologyHandler(deps.Engine, deps.Metrics)
	permitHandler := handlers.NewPermitHandler(deps.Search)
	municipalityHandler := handlers.NewMunicipalityHandler(services.NewMunicipalityService(source))
	dashboardHandler := handlers.NewDashboardHandler(services.NewStatusBoardService(deps.Search))
	healthHandler := handlers.NewHealthHandler(source, deps.Engine, cfg.Version)

	suggestLimiter := middlewares.NewRateLimiter(cfg.SuggestRateLimit, cfg.SuggestRateBurst)

	api := r.Group("/api/v1")
	{
		terminologie := api.Group("/terminologie")
		{
			terminologie.GET("/suggesties", suggestLimiter.Handler(), terminologyHandler.Suggestions)
			terminologie.GET("/classificatie", terminologyHandler.Classify)
			terminologie.GET("/expansie", terminologyHandler.Expand)
			terminologie.GET("/groepen", terminologyHandler.Groups)
		}

		api.GET("/vergunningen", permitHandler.Search)
		api.GET("/vergunningen/:id", permitHandler.Get)
		api.GET("/gemeenten", municipalityHandler.List)
		api.GET("/dashboard", dashboardHandler.Get)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Accept-Encoding, Cache-Control, X-Request-ID, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
