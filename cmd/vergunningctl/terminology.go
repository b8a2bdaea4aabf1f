package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

var validateStrict bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <texto>",
	Short: "Lista as sugestões para um texto digitado",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		resp := models.SuggestionsResponse{Query: args[0], Suggestions: []models.TermSuggestion{}}
		for _, term := range engine.Suggestions(args[0]) {
			cls := engine.Classify(term)
			resp.Suggestions = append(resp.Suggestions, models.TermSuggestion{
				Term:      term,
				IsLegacy:  cls.IsLegacy,
				IsCurrent: cls.IsCurrent,
			})
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <termo>",
	Short: "Indica se um termo é do vocabulário antigo, do novo ou de nenhum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		cls := engine.Classify(args[0])
		return printJSON(cmd.OutOrStdout(), models.ClassificationResponse{
			Term:      args[0],
			IsLegacy:  cls.IsLegacy,
			IsCurrent: cls.IsCurrent,
		})
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand <termo>",
	Short: "Mostra a query OR gerada para um termo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}

		terms := engine.ExpandTerms(args[0])
		return printJSON(cmd.OutOrStdout(), models.ExpansionResponse{
			Term:  args[0],
			Terms: terms,
			Query: reconcile.Render(terms),
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [arquivo]",
	Short: "Valida um arquivo de vocabulário (YAML, TOML ou JSON)",
	Long:  "Sem argumento valida VOCABULARY_FILE, ou a tabela embutida quando a variável não estiver definida.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []vocabulary.Option
		if validateStrict || cfg.VocabularyStrict {
			opts = append(opts, vocabulary.StrictCurrentTerms())
		}

		path := cfg.VocabularyFile
		if len(args) == 1 {
			path = args[0]
		}

		var (
			vocab *vocabulary.Vocabulary
			err   error
		)
		if path == "" {
			path = "(embutido)"
			vocab, err = vocabulary.New(vocabulary.DefaultGroups, opts...)
		} else {
			vocab, err = vocabulary.LoadFile(path, opts...)
		}
		if err != nil {
			return fmt.Errorf("vocabulário inválido: %w", err)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d grupos válidos\n", path, vocab.Len())
		return err
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "rejeita termos novos repetidos entre grupos")
	rootCmd.AddCommand(suggestCmd, classifyCmd, expandCmd, validateCmd)
}
