package query

import (
	"regexp"
	"strings"

	"github.com/brabant-dados/app-vergunningen-search/internal/utils"
)

// ParsedQuery representa uma query processada
type ParsedQuery struct {
	Original string   // query original
	Cleaned  string   // sem espaços extras, grafia preservada
	Tokens   []string // minúsculos, sem acentos e sem stopwords
}

// IsEmpty indica que não sobrou texto depois da limpeza
func (q *ParsedQuery) IsEmpty() bool {
	return q.Cleaned == ""
}

// Parser processa e normaliza queries de busca
type Parser struct{}

// NewParser cria um novo parser
func NewParser() *Parser {
	return &Parser{}
}

var (
	whitespace  = regexp.MustCompile(`\s+`)
	punctuation = regexp.MustCompile(`[^\p{L}\p{N}\s\-'()]`)
)

// Parse processa a query e retorna estrutura normalizada
func (p *Parser) Parse(query string) *ParsedQuery {
	cleaned := strings.TrimSpace(whitespace.ReplaceAllString(query, " "))

	normalized := punctuation.ReplaceAllString(utils.NormalizeText(cleaned), " ")
	normalized = strings.TrimSpace(whitespace.ReplaceAllString(normalized, " "))

	return &ParsedQuery{
		Original: query,
		Cleaned:  cleaned,
		Tokens:   p.tokenize(normalized),
	}
}

// tokenize quebra a query em tokens
func (p *Parser) tokenize(query string) []string {
	parts := strings.Fields(query)

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Trim(part, "()")
		if !isStopword(part) && len(part) > 1 {
			tokens = append(tokens, part)
		}
	}

	return tokens
}

// stopwords em holandês
var stopwords = map[string]bool{
	"de": true, "het": true, "een": true, "en": true, "van": true,
	"voor": true, "in": true, "op": true, "aan": true, "met": true,
	"te": true, "tot": true, "bij": true, "of": true, "om": true,
	"naar": true, "uit": true, "over": true, "door": true, "als": true,
	"is": true, "zijn": true, "wordt": true, "worden": true, "mijn": true,
	"ik": true, "wil": true, "waar": true, "hoe": true, "wat": true,
	"'t": true, "'s": true,
}

func isStopword(word string) bool {
	return stopwords[strings.ToLower(word)]
}
