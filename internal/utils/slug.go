package utils

import (
	"regexp"
	"strings"
)

// MaxSlugLength limita o tamanho dos slugs gerados
const MaxSlugLength = 50

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converte texto para kebab-case ASCII.
// Exemplo: "Omgevingsplanactiviteit (kap)" -> "omgevingsplanactiviteit-kap"
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(FoldAccents(text)), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}

	return slug
}
