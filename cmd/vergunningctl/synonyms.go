package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brabant-dados/app-vergunningen-search/internal/app"
	"github.com/brabant-dados/app-vergunningen-search/internal/search/synonyms"
)

var (
	syncClear bool
	syncList  bool
)

var syncSynonymsCmd = &cobra.Command{
	Use:   "sync-synonyms",
	Short: "Grava cada grupo do vocabulário como sinônimo no Typesense",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.TypesenseAPIKey == "" {
			return eris.New("typesense api key is required (TYPESENSE_API_KEY)")
		}

		vocab, err := app.LoadVocabulary(cfg)
		if err != nil {
			return err
		}

		_, client, err := app.NewTypesenseSource(ctx, cfg)
		if err != nil {
			return eris.Wrap(err, "connect typesense")
		}
		svc := synonyms.NewService(client.GetClient(), client.Collection())

		if syncClear {
			removed, err := svc.ClearVocabulary(ctx)
			if err != nil {
				return eris.Wrap(err, "clear synonyms")
			}
			zap.L().Info("sinônimos removidos", zap.Int("removed", removed))
		}

		n, err := svc.SyncVocabulary(ctx, vocab)
		if err != nil {
			return eris.Wrap(err, "sync synonyms")
		}
		zap.L().Info("sinônimos sincronizados",
			zap.Int("groups", n),
			zap.String("collection", client.Collection()),
		)

		if !syncList {
			return nil
		}
		list, err := svc.ListSynonyms(ctx)
		if err != nil {
			return eris.Wrap(err, "list synonyms")
		}
		for _, s := range list {
			if s.Id == nil {
				continue
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", *s.Id, s.Synonyms); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	syncSynonymsCmd.Flags().BoolVar(&syncClear, "clear", false, "remove os sinônimos vocab-* antes de gravar")
	syncSynonymsCmd.Flags().BoolVar(&syncList, "list", false, "lista os sinônimos da collection ao final")
	rootCmd.AddCommand(syncSynonymsCmd)
}
