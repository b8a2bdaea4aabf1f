package permits

import (
	"sort"
	"strings"

	"github.com/brabant-dados/app-vergunningen-search/internal/models"
	"github.com/brabant-dados/app-vergunningen-search/internal/utils"
)

// MatchesTerms verifica se algum termo aparece no tipo de atividade, na
// descrição ou no endereço (sem acentos, sem diferenciar maiúsculas)
func MatchesTerms(p models.Permit, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	fields := []string{
		utils.NormalizeText(p.ActivityType),
		utils.NormalizeText(p.ProjectDescription),
		utils.NormalizeText(p.Address),
	}
	for _, term := range terms {
		needle := utils.NormalizeText(term)
		if needle == "" {
			continue
		}
		for _, field := range fields {
			if strings.Contains(field, needle) {
				return true
			}
		}
	}
	return false
}

// MatchesPermitType verifica a categoria pelo tipo de atividade
func MatchesPermitType(p models.Permit, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	activity := utils.NormalizeText(p.ActivityType)
	for _, term := range terms {
		needle := utils.NormalizeText(term)
		if needle != "" && strings.Contains(activity, needle) {
			return true
		}
	}
	return false
}

// Matches aplica todos os critérios da query a uma publicação
func Matches(p models.Permit, q Query) bool {
	return MatchesTerms(p, q.Terms) &&
		MatchesPermitType(p, q.PermitTypeTerms) &&
		q.Filters.MatchesStatus(p) &&
		q.Filters.MatchesDate(p) &&
		q.Municipalities.Matches(p)
}

// SortByPublication ordena por data de publicação (mais recente primeiro) e id
func SortByPublication(list []models.Permit) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].PublicationDate != list[j].PublicationDate {
			return list[i].PublicationDate > list[j].PublicationDate
		}
		return list[i].ID < list[j].ID
	})
}
