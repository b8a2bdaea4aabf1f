package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
)

// SearchCache armazena resultados de busca em memória
type SearchCache struct {
	data    map[string]*CachedResult
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

// CachedResult representa um resultado em cache
type CachedResult struct {
	Response  *models.SearchResponse
	Timestamp time.Time
}

// NewSearchCache cria um novo cache de busca
func NewSearchCache(ttl time.Duration, maxSize int) *SearchCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &SearchCache{
		data:    make(map[string]*CachedResult),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get busca um resultado no cache
func (c *SearchCache) Get(key string) *models.SearchResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if time.Since(cached.Timestamp) < c.ttl {
			resp := *cached.Response
			resp.Results = append([]models.Permit(nil), cached.Response.Results...)
			resp.FromCache = true
			return &resp
		}
	}
	return nil
}

// Set armazena um resultado no cache
func (c *SearchCache) Set(key string, response *models.SearchResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Limpa entradas expiradas se cache está cheio
	if len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = &CachedResult{
		Response:  response,
		Timestamp: time.Now(),
	}
}

// GenerateKey gera uma chave única para a requisição. Parâmetros equivalentes
// (espaços extras, ordem dos municípios) geram a mesma chave.
func (c *SearchCache) GenerateKey(filters models.SearchFilters, sel models.Selection) string {
	keyData := fmt.Sprintf(
		"%s|%s|%s|%s|%s|%s",
		strings.Join(strings.Fields(filters.SearchQuery), " "),
		filters.DateFrom,
		filters.DateTo,
		filters.Status,
		filters.PermitType,
		strings.Join(sel.Names(), ","),
	)

	hash := sha256.Sum256([]byte(keyData))
	return hex.EncodeToString(hash[:16])
}

// cleanup remove entradas expiradas
func (c *SearchCache) cleanup() {
	now := time.Now()
	for key, cached := range c.data {
		if now.Sub(cached.Timestamp) > c.ttl {
			delete(c.data, key)
		}
	}

	// Se ainda está cheio, remove as mais antigas
	if len(c.data) >= c.maxSize {
		oldest := time.Now()
		oldestKey := ""
		for key, cached := range c.data {
			if cached.Timestamp.Before(oldest) {
				oldest = cached.Timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}
