// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - GIN_MODE: debug, release ou test (default: release)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json ou console (default: json)
//   - APP_VERSION: Versão reportada em traces e no health check (default: dev)
//
// ## Vocabulário
//   - VOCABULARY_FILE: Arquivo YAML, TOML ou JSON com os grupos de termos (default: tabela embutida)
//   - VOCABULARY_STRICT: Rejeita termos novos repetidos entre grupos (default: false)
//   - MAX_SUGGESTIONS: Tamanho máximo da lista de sugestões (default: 8)
//
// ## Publicações
//   - PERMIT_SOURCE: memory ou typesense (default: memory)
//   - PERMITS_FILE: Arquivo JSON de publicações para a fonte memory (default: conjunto embutido)
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//   - TYPESENSE_COLLECTION: Collection de publicações (default: vergunningen)
//   - TYPESENSE_SYNC_SYNONYMS: Grava o vocabulário como sinônimos na inicialização (default: true)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini
//   - GEMINI_CHAT_MODEL: Modelo para inferência de categoria (default: gemini-2.0-flash)
//   - ENABLE_AI_ANALYSIS: Liga a inferência de categoria para textos fora do vocabulário (default: false)
//   - AI_MIN_CONFIDENCE: Confiança mínima para aceitar a categoria inferida (default: 0.7)
//
// ## Busca
//   - SEARCH_CACHE_TTL_SECONDS: TTL do cache de buscas (default: 120)
//   - SEARCH_CACHE_MAX_SIZE: Tamanho máximo do cache de buscas (default: 500)
//   - SUGGEST_RATE_LIMIT: Requisições por segundo por cliente em /suggesties, 0 desliga (default: 0)
//   - SUGGEST_RATE_BURST: Rajada permitida acima do limite (default: 10)
//
// ## Tracing
//   - TRACING_ENABLED: Liga o exporter OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
//   - TRACING_SAMPLE_RATIO: Fração de traces amostrados (default: 1.0)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Fontes de publicações aceitas em PERMIT_SOURCE
const (
	SourceMemory    = "memory"
	SourceTypesense = "typesense"
)

var (
	ErrInvalidPermitSource = errors.New("PERMIT_SOURCE inválido (use memory ou typesense)")
	ErrMissingTypesenseKey = errors.New("TYPESENSE_API_KEY é obrigatório com PERMIT_SOURCE=typesense")
	ErrInvalidConfidence   = errors.New("AI_MIN_CONFIDENCE deve estar entre 0 e 1")
	ErrInvalidLogFormat    = errors.New("LOG_FORMAT inválido (use json ou console)")
)

type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	Version    string

	// Vocabulary configuration
	VocabularyFile   string
	VocabularyStrict bool
	MaxSuggestions   int

	// Permit source configuration
	PermitSource string
	PermitsFile  string

	TypesenseHost         string
	TypesensePort         string
	TypesenseAPIKey       string
	TypesenseProtocol     string
	TypesenseCollection   string
	TypesenseSyncSynonyms bool

	// Gemini configuration
	GeminiAPIKey     string
	GeminiChatModel  string
	EnableAIAnalysis bool
	AIMinConfidence  float64

	// Search configuration
	SearchCacheTTLSeconds int
	SearchCacheMaxSize    int
	SuggestRateLimit      float64
	SuggestRateBurst      int

	// Tracing configuration
	TracingEnabled     bool
	TracingEndpoint    string
	TracingSampleRatio float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
		Version:    getEnv("APP_VERSION", "dev"),

		VocabularyFile:   getEnv("VOCABULARY_FILE", ""),
		VocabularyStrict: getEnvBool("VOCABULARY_STRICT", false),
		MaxSuggestions:   getEnvInt("MAX_SUGGESTIONS", 8),

		PermitSource: strings.ToLower(getEnv("PERMIT_SOURCE", SourceMemory)),
		PermitsFile:  getEnv("PERMITS_FILE", ""),

		TypesenseHost:         getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:         getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:       getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol:     getEnv("TYPESENSE_PROTOCOL", "http"),
		TypesenseCollection:   getEnv("TYPESENSE_COLLECTION", "vergunningen"),
		TypesenseSyncSynonyms: getEnvBool("TYPESENSE_SYNC_SYNONYMS", true),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel:  getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),
		EnableAIAnalysis: getEnvBool("ENABLE_AI_ANALYSIS", false),
		AIMinConfidence:  getEnvFloat("AI_MIN_CONFIDENCE", 0.7),

		SearchCacheTTLSeconds: getEnvInt("SEARCH_CACHE_TTL_SECONDS", 120),
		SearchCacheMaxSize:    getEnvInt("SEARCH_CACHE_MAX_SIZE", 500),
		SuggestRateLimit:      getEnvFloat("SUGGEST_RATE_LIMIT", 0),
		SuggestRateBurst:      getEnvInt("SUGGEST_RATE_BURST", 10),

		TracingEnabled:     getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint:    getEnv("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: getEnvFloat("TRACING_SAMPLE_RATIO", 1.0),
	}
}

// Validate verifica combinações que impedem a inicialização
func (c *Config) Validate() error {
	switch c.PermitSource {
	case SourceMemory:
	case SourceTypesense:
		if c.TypesenseAPIKey == "" {
			return ErrMissingTypesenseKey
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPermitSource, c.PermitSource)
	}

	if c.AIMinConfidence < 0 || c.AIMinConfidence > 1 {
		return ErrInvalidConfidence
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// AIEnabled indica se a inferência por LLM pode ser usada
func (c *Config) AIEnabled() bool {
	return c.EnableAIAnalysis && c.GeminiAPIKey != ""
}

// SearchCacheTTL retorna o TTL do cache como duração
func (c *Config) SearchCacheTTL() time.Duration {
	return time.Duration(c.SearchCacheTTLSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
