package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/brabant-dados/app-vergunningen-search/docs"
	"github.com/brabant-dados/app-vergunningen-search/internal/api/routes"
	"github.com/brabant-dados/app-vergunningen-search/internal/app"
	"github.com/brabant-dados/app-vergunningen-search/internal/config"
	"github.com/brabant-dados/app-vergunningen-search/internal/logger"
	"github.com/brabant-dados/app-vergunningen-search/internal/observability"
)

// @title           Vergunningen Zoeken API
// @version         1.0
// @description     Busca de publicações de licenças de Noord-Brabant com tradução entre o vocabulário Wabo e o da Omgevingswet

// @contact.name   Brabant Dados

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg := config.LoadConfig()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		zap.L().Fatal("configuração inválida", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)

	tracing, err := observability.SetupTracing(context.Background(), cfg)
	if err != nil {
		// a API funciona sem traces
		zap.L().Error("tracing desligado", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx); err != nil {
			zap.L().Error("erro ao encerrar tracing", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vocab, err := app.LoadVocabulary(cfg)
	if err != nil {
		zap.L().Fatal("vocabulário inválido", zap.Error(err))
	}
	zap.L().Info("vocabulário carregado", zap.Int("groups", vocab.Len()), zap.Bool("strict", cfg.VocabularyStrict))

	engine := app.NewEngine(cfg, vocab)

	source, err := app.NewPermitSource(ctx, cfg, vocab)
	if err != nil {
		zap.L().Fatal("erro ao iniciar fonte de publicações", zap.String("source", cfg.PermitSource), zap.Error(err))
	}

	analyzer, err := app.NewAnalyzer(ctx, cfg)
	if err != nil {
		// a busca funciona sem a inferência
		zap.L().Warn("inferência de categoria desligada", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	searchService := app.NewSearchService(cfg, source, engine, analyzer, metrics)

	r := routes.SetupRouter(cfg, routes.Dependencies{
		Engine:  engine,
		Search:  searchService,
		Metrics: metrics,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("servidor iniciado", zap.String("port", cfg.ServerPort), zap.String("source", cfg.PermitSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("erro ao encerrar servidor", zap.Error(err))
	}
}
