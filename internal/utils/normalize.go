package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldAccents remove acentos e diacríticos
// Exemplo: "één" -> "een", "Café" -> "Cafe"
func FoldAccents(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, _ := transform.String(t, s)
	return folded
}

// NormalizeText prepara um texto para comparação: sem acentos, minúsculo e
// com espaços colapsados
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(FoldAccents(s))), " ")
}
