package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brabant-dados/app-vergunningen-search/internal/app"
	"github.com/brabant-dados/app-vergunningen-search/internal/config"
	"github.com/brabant-dados/app-vergunningen-search/internal/logger"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vergunningctl",
	Short: "Ferramentas de operação da busca de vergunningen",
	Long:  "Consulta o vocabulário Wabo/Omgevingswet, valida arquivos de vocabulário, sincroniza sinônimos e carrega publicações no Typesense.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadConfig()

		if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

// loadEngine monta o engine a partir da configuração carregada
func loadEngine() (*reconcile.Engine, error) {
	vocab, err := app.LoadVocabulary(cfg)
	if err != nil {
		return nil, err
	}
	return app.NewEngine(cfg, vocab), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
