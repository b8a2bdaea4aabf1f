package models

import "time"

// DateLayout é o formato das datas de publicação
const DateLayout = "2006-01-02"

// PermitStatus representa a situação de uma licença publicada
type PermitStatus string

const (
	StatusApproved PermitStatus = "approved"
	StatusPending  PermitStatus = "pending"
	StatusRejected PermitStatus = "rejected"
	StatusInReview PermitStatus = "in-review"

	// StatusAll só é usado em filtros
	StatusAll PermitStatus = "all"
)

// PermitStatuses lista as situações na ordem do quadro de status
var PermitStatuses = []PermitStatus{StatusInReview, StatusPending, StatusApproved, StatusRejected}

// IsValid verifica se é uma situação de licença conhecida
func (s PermitStatus) IsValid() bool {
	switch s {
	case StatusApproved, StatusPending, StatusRejected, StatusInReview:
		return true
	}
	return false
}

// Label retorna o rótulo em holandês exibido nos cartões
func (s PermitStatus) Label() string {
	switch s {
	case StatusApproved:
		return "Goedgekeurd"
	case StatusPending:
		return "In behandeling"
	case StatusRejected:
		return "Afgewezen"
	case StatusInReview:
		return "In beoordeling"
	}
	return string(s)
}

// Permit é uma publicação de licença (bekendmaking). O tipo de atividade usa o
// vocabulário novo.
type Permit struct {
	ID                 string       `json:"id" validate:"required"`
	PublicationDate    string       `json:"publication_date" validate:"required,datetime=2006-01-02"`
	Municipality       string       `json:"municipality" validate:"required"`
	CaseNumber         string       `json:"case_number"`
	Address            string       `json:"address"`
	ProjectDescription string       `json:"project_description"`
	ActivityType       string       `json:"activity_type" validate:"required"`
	Status             PermitStatus `json:"status" validate:"required,oneof=approved pending rejected in-review"`
	URL                string       `json:"url" validate:"omitempty,url"`
}

// PublishedAt converte a data de publicação
func (p Permit) PublishedAt() (time.Time, error) {
	return time.Parse(DateLayout, p.PublicationDate)
}
