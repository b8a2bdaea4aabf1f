package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/brabant-dados/app-vergunningen-search/internal/app"
	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
)

var (
	seedFile    string
	seedBatch   int
	seedWorkers int
	seedDryRun  bool
)

// permitUpserter grava uma publicação no índice
type permitUpserter interface {
	Upsert(ctx context.Context, p models.Permit) error
}

// seedStats resume uma carga
type seedStats struct {
	Total     int
	Batches   int
	Processed int64
	Errors    int64
	Elapsed   time.Duration
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carrega publicações de um arquivo JSON na collection do Typesense",
	Long:  "Sem --file usa o conjunto embutido. Os registros são validados antes da carga; com --dry-run nada é gravado.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		var (
			source *permits.MemorySource
			err    error
		)
		if seedFile != "" {
			source, err = permits.LoadMemorySource(seedFile)
		} else {
			source, err = permits.NewDefaultMemorySource()
		}
		if err != nil {
			return eris.Wrap(err, "load permits")
		}

		var target permitUpserter
		if !seedDryRun {
			if cfg.TypesenseAPIKey == "" {
				return eris.New("typesense api key is required (TYPESENSE_API_KEY)")
			}
			ts, _, err := app.NewTypesenseSource(ctx, cfg)
			if err != nil {
				return eris.Wrap(err, "connect typesense")
			}
			target = ts
		}

		stats, err := seedPermits(ctx, source.All(), seedBatch, seedWorkers, target)
		if err != nil {
			return err
		}

		zap.L().Info("carga concluída",
			zap.Int("total", stats.Total),
			zap.Int("batches", stats.Batches),
			zap.Int64("processed", stats.Processed),
			zap.Int64("errors", stats.Errors),
			zap.Duration("elapsed", stats.Elapsed),
			zap.Bool("dry_run", target == nil),
		)
		if stats.Errors > 0 {
			return eris.Errorf("%d publicações não foram gravadas", stats.Errors)
		}
		return nil
	},
}

// seedPermits divide a lista em lotes e grava cada lote em um worker.
// Com target nil apenas conta os registros. Falhas individuais não
// interrompem a carga.
func seedPermits(ctx context.Context, list []models.Permit, batchSize, workers int, target permitUpserter) (seedStats, error) {
	start := time.Now()
	if batchSize < 1 {
		batchSize = 1
	}
	if workers < 1 {
		workers = 1
	}

	batches := chunk(list, batchSize)
	stats := seedStats{Total: len(list), Batches: len(batches)}

	var processed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, batch := range batches {
		g.Go(func() error {
			log := zap.L().With(zap.Int("batch", i+1), zap.Int("size", len(batch)))

			for _, p := range batch {
				if err := gctx.Err(); err != nil {
					return err
				}
				if target == nil {
					processed.Add(1)
					continue
				}
				if err := target.Upsert(gctx, p); err != nil {
					failed.Add(1)
					log.Error("falha ao gravar publicação", zap.String("id", p.ID), zap.Error(err))
					continue
				}
				processed.Add(1)
			}

			log.Debug("lote concluído")
			return nil
		})
	}

	err := g.Wait()
	stats.Processed = processed.Load()
	stats.Errors = failed.Load()
	stats.Elapsed = time.Since(start)
	if err != nil {
		return stats, eris.Wrap(err, "seed")
	}
	return stats, nil
}

func chunk(list []models.Permit, size int) [][]models.Permit {
	out := make([][]models.Permit, 0, (len(list)+size-1)/size)
	for start := 0; start < len(list); start += size {
		end := min(start+size, len(list))
		out = append(out, list[start:end])
	}
	return out
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "arquivo JSON de publicações (default: conjunto embutido)")
	seedCmd.Flags().IntVar(&seedBatch, "batch", 50, "publicações por lote")
	seedCmd.Flags().IntVar(&seedWorkers, "workers", 3, "lotes gravados em paralelo")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "valida e conta sem gravar")
	rootCmd.AddCommand(seedCmd)
}
