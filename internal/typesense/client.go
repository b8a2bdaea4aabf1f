package typesense

import (
	"context"
	"fmt"
	"time"

	"github.com/typesense/typesense-go/v3/typesense"

	"github.com/brabant-dados/app-vergunningen-search/internal/config"
)

// Client encapsula o cliente Typesense configurado a partir do ambiente
type Client struct {
	client     *typesense.Client
	collection string
}

// NewClient cria o cliente com servidor e chave da configuração
func NewClient(cfg *config.Config) *Client {
	return NewClientWithServer(
		fmt.Sprintf("%s://%s:%s", cfg.TypesenseProtocol, cfg.TypesenseHost, cfg.TypesensePort),
		cfg.TypesenseAPIKey,
		cfg.TypesenseCollection,
	)
}

// NewClientWithServer cria o cliente a partir da URL completa do servidor
func NewClientWithServer(serverURL, apiKey, collection string) *Client {
	return &Client{
		client: typesense.NewClient(
			typesense.WithServer(serverURL),
			typesense.WithAPIKey(apiKey),
			typesense.WithConnectionTimeout(10*time.Second),
		),
		collection: collection,
	}
}

// GetClient retorna o cliente Typesense subjacente
func (c *Client) GetClient() *typesense.Client {
	return c.client
}

// Collection retorna o nome da collection de publicações
func (c *Client) Collection() string {
	return c.collection
}

// Health verifica se o servidor responde
func (c *Client) Health(ctx context.Context) error {
	ok, err := c.client.Health(ctx, 2*time.Second)
	if err != nil {
		return fmt.Errorf("typesense indisponível: %w", err)
	}
	if !ok {
		return fmt.Errorf("typesense indisponível")
	}
	return nil
}
