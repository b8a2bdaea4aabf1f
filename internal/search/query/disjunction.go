package query

import (
	"strconv"
	"strings"

	"github.com/brabant-dados/app-vergunningen-search/internal/reconcile"
)

// ParseDisjunction lê uma query expandida ("a" OR "b" OR "c") de volta para a
// lista de termos. Entradas sem aspas viram um único termo.
func ParseDisjunction(expanded string) []string {
	expanded = strings.TrimSpace(expanded)
	if expanded == "" {
		return []string{}
	}

	var terms []string
	rest := expanded
	for rest != "" {
		if rest[0] != '"' {
			return []string{expanded}
		}

		quoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return []string{expanded}
		}
		term, err := strconv.Unquote(quoted)
		if err != nil {
			return []string{expanded}
		}
		terms = append(terms, term)

		rest = rest[len(quoted):]
		if rest == "" {
			break
		}
		if !strings.HasPrefix(rest, reconcile.Separator) {
			return []string{expanded}
		}
		rest = rest[len(reconcile.Separator):]
	}

	return terms
}
