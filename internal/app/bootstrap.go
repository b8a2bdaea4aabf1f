// Package app monta as dependências compartilhadas pela API e pelo vergunningctl.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/brabant-dados/app-vergunningen-search/internal/config"
	"github.com/brabant-dados/app-vergunningen-search/internal/observability"
	"github.com/brabant-dados/app-vergunningen-search/internal/permits"
	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
	"github.com/brabant-dados/app-vergunningen-search/internal/search"
	"github.com/brabant-dados/app-vergunningen-search/internal/search/adapter"
	"github.com/brabant-dados/app-vergunningen-search/internal/search/query"
	"github.com/brabant-dados/app-vergunningen-search/internal/search/synonyms"
	"github.com/brabant-dados/app-vergunningen-search/internal/typesense"
	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

// LoadVocabulary lê VOCABULARY_FILE ou usa a tabela embutida
func LoadVocabulary(cfg *config.Config) (*vocabulary.Vocabulary, error) {
	var opts []vocabulary.Option
	if cfg.VocabularyStrict {
		opts = append(opts, vocabulary.StrictCurrentTerms())
	}

	if cfg.VocabularyFile == "" {
		return vocabulary.New(vocabulary.DefaultGroups, opts...)
	}

	vocab, err := vocabulary.LoadFile(cfg.VocabularyFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar vocabulário %s: %w", cfg.VocabularyFile, err)
	}
	return vocab, nil
}

// NewEngine cria o engine de reconciliação com o limite de sugestões configurado
func NewEngine(cfg *config.Config, vocab *vocabulary.Vocabulary) *reconcile.Engine {
	return reconcile.NewEngine(vocab, reconcile.WithMaxSuggestions(cfg.MaxSuggestions))
}

// NewMemorySource carrega PERMITS_FILE ou o conjunto embutido
func NewMemorySource(cfg *config.Config) (*permits.MemorySource, error) {
	if cfg.PermitsFile == "" {
		return permits.NewDefaultMemorySource()
	}
	return permits.LoadMemorySource(cfg.PermitsFile)
}

// NewTypesenseSource conecta na collection, criando-a se preciso
func NewTypesenseSource(ctx context.Context, cfg *config.Config) (*adapter.TypesenseSource, *typesense.Client, error) {
	client := typesense.NewClient(cfg)
	source := adapter.NewTypesenseSource(client.GetClient(), client.Collection())

	if err := source.EnsureCollection(ctx); err != nil {
		return nil, nil, err
	}
	return source, client, nil
}

// NewPermitSource escolhe a fonte conforme PERMIT_SOURCE. Com Typesense o
// vocabulário é gravado como sinônimos quando TYPESENSE_SYNC_SYNONYMS estiver ligado.
func NewPermitSource(ctx context.Context, cfg *config.Config, vocab *vocabulary.Vocabulary) (permits.Source, error) {
	switch cfg.PermitSource {
	case config.SourceTypesense:
		source, client, err := NewTypesenseSource(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.TypesenseSyncSynonyms {
			n, err := synonyms.NewService(client.GetClient(), client.Collection()).SyncVocabulary(ctx, vocab)
			if err != nil {
				// a busca continua funcionando pela expansão local
				zap.L().Warn("falha ao sincronizar sinônimos", zap.Error(err))
			} else {
				zap.L().Info("sinônimos sincronizados", zap.Int("groups", n))
			}
		}
		return source, nil
	default:
		source, err := NewMemorySource(cfg)
		if err != nil {
			return nil, err
		}
		zap.L().Info("fonte de publicações em memória", zap.Int("permits", source.Len()))
		return source, nil
	}
}

// NewAnalyzer cria o cliente Gemini quando a inferência está ligada; nil caso contrário
func NewAnalyzer(ctx context.Context, cfg *config.Config) (*query.Analyzer, error) {
	if !cfg.AIEnabled() {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return query.NewAnalyzer(client, cfg.GeminiChatModel, cfg.AIMinConfidence), nil
}

// NewSearchService monta o serviço de busca com cache e métricas
func NewSearchService(cfg *config.Config, source permits.Source, engine *reconcile.Engine, analyzer *query.Analyzer, metrics *observability.Metrics) *search.Service {
	opts := []search.Option{search.WithMetrics(metrics)}
	if analyzer != nil {
		opts = append(opts, search.WithAnalyzer(analyzer))
	}
	if cfg.SearchCacheTTLSeconds > 0 && cfg.SearchCacheMaxSize > 0 {
		opts = append(opts, search.WithCache(search.NewSearchCache(cfg.SearchCacheTTL(), cfg.SearchCacheMaxSize)))
	} else {
		opts = append(opts, search.WithCache(nil))
	}
	return search.NewService(source, engine, opts...)
}
