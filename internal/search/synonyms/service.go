package synonyms

import (
	"context"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"go.uber.org/zap"

	"github.com/brabant-dados/app-vergunningen-search/internal/utils"
	"github.com/brabant-dados/app-vergunningen-search/internal/vocabulary"
)

// IDPrefix marca os sinônimos gerados a partir do vocabulário
const IDPrefix = "vocab-"

// Service gerencia sinônimos no Typesense
type Service struct {
	client     *typesense.Client
	collection string
}

// NewService cria um novo serviço de sinônimos
func NewService(client *typesense.Client, collection string) *Service {
	return &Service{
		client:     client,
		collection: collection,
	}
}

// GroupID gera o id do conjunto de sinônimos de um grupo
// Exemplo: {Legacy: [kapvergunning ...]} -> "vocab-kapvergunning"
func GroupID(group vocabulary.TermGroup) string {
	return IDPrefix + utils.Slugify(group.Legacy[0])
}

// GroupSynonyms junta os termos antigos e novos num sinônimo multi-direcional
func GroupSynonyms(group vocabulary.TermGroup) []string {
	all := make([]string, 0, len(group.Legacy)+len(group.Current))
	all = append(all, group.Legacy...)
	all = append(all, group.Current...)
	return all
}

// SyncVocabulary grava cada grupo do vocabulário como sinônimo. Retorna quantos
// grupos foram gravados; falhas individuais são registradas e não interrompem.
func (s *Service) SyncVocabulary(ctx context.Context, vocab *vocabulary.Vocabulary) (int, error) {
	groups := vocab.Groups()
	zap.L().Info("sincronizando sinônimos do vocabulário",
		zap.String("collection", s.collection),
		zap.Int("grupos", len(groups)))

	loaded := 0
	for _, group := range groups {
		if err := s.UpsertSynonym(ctx, GroupID(group), GroupSynonyms(group)); err != nil {
			zap.L().Warn("erro ao gravar sinônimo", zap.String("id", GroupID(group)), zap.Error(err))
			continue
		}
		loaded++
	}

	zap.L().Info("sinônimos carregados", zap.Int("gravados", loaded), zap.Int("total", len(groups)))
	if loaded == 0 && len(groups) > 0 {
		return 0, fmt.Errorf("nenhum sinônimo gravado na collection %s", s.collection)
	}
	return loaded, nil
}

// UpsertSynonym cria ou atualiza um sinônimo
func (s *Service) UpsertSynonym(ctx context.Context, id string, synonyms []string) error {
	synonymSchema := &api.SearchSynonymSchema{
		Synonyms: synonyms,
	}

	_, err := s.client.Collection(s.collection).Synonyms().Upsert(ctx, id, synonymSchema)
	if err != nil {
		return fmt.Errorf("erro ao upsert sinônimo %s: %w", id, err)
	}

	return nil
}

// ListSynonyms lista todos os sinônimos configurados
func (s *Service) ListSynonyms(ctx context.Context) ([]*api.SearchSynonym, error) {
	result, err := s.client.Collection(s.collection).Synonyms().Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar sinônimos: %w", err)
	}
	return result, nil
}

// ClearVocabulary remove os sinônimos gerados pelo vocabulário e mantém os demais
func (s *Service) ClearVocabulary(ctx context.Context) (int, error) {
	synonymList, err := s.ListSynonyms(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, syn := range synonymList {
		if syn == nil || syn.Id == nil || !strings.HasPrefix(*syn.Id, IDPrefix) {
			continue
		}
		if _, err := s.client.Collection(s.collection).Synonym(*syn.Id).Delete(ctx); err != nil {
			zap.L().Warn("erro ao deletar sinônimo", zap.String("id", *syn.Id), zap.Error(err))
			continue
		}
		removed++
	}

	return removed, nil
}
