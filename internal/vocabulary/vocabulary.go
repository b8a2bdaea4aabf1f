// Package vocabulary mantém a tabela imutável que liga os termos antigos (Wabo)
// aos termos novos (Omgevingswet) de uma mesma categoria de licença.
package vocabulary

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
)

// TermGroup representa uma categoria de licença nos dois vocabulários
type TermGroup struct {
	Legacy  []string `json:"legacy" yaml:"legacy" toml:"legacy" validate:"required,min=1,dive,required"`
	Current []string `json:"current" yaml:"current" toml:"current" validate:"required,min=1,dive,required"`
}

// Clone retorna uma cópia independente do grupo
func (g TermGroup) Clone() TermGroup {
	return TermGroup{
		Legacy:  append([]string(nil), g.Legacy...),
		Current: append([]string(nil), g.Current...),
	}
}

// Vocabulary é a tabela bidirecional de grupos. Não muda depois de construída,
// então leituras concorrentes não precisam de lock.
type Vocabulary struct {
	groups       []TermGroup
	legacyIndex  map[string]int
	currentIndex map[string]int
}

type options struct {
	strictCurrent bool
}

// Option altera a validação feita por New
type Option func(*options)

// StrictCurrentTerms rejeita termos novos repetidos entre grupos.
func StrictCurrentTerms() Option {
	return func(o *options) {
		o.strictCurrent = true
	}
}

var validate = validator.New()

// New valida os grupos e constrói o vocabulário. Termos novos compartilhados
// entre grupos resolvem para o primeiro grupo que os declara.
func New(groups []TermGroup, opts ...Option) (*Vocabulary, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	v := &Vocabulary{
		groups:       make([]TermGroup, 0, len(groups)),
		legacyIndex:  make(map[string]int),
		currentIndex: make(map[string]int),
	}

	for i, group := range groups {
		if err := validateGroup(i, group); err != nil {
			return nil, err
		}
		v.groups = append(v.groups, group.Clone())
	}

	for i, group := range v.groups {
		for _, term := range group.Legacy {
			if prev, ok := v.legacyIndex[term]; ok {
				return nil, eris.Wrapf(ErrDuplicateLegacyTerm, "termo %q nos grupos %d e %d", term, prev, i)
			}
			v.legacyIndex[term] = i
		}
	}

	for i, group := range v.groups {
		for _, term := range group.Current {
			if _, ok := v.legacyIndex[term]; ok {
				return nil, eris.Wrapf(ErrAmbiguousTerm, "termo %q no grupo %d", term, i)
			}
			if prev, ok := v.currentIndex[term]; ok {
				if o.strictCurrent {
					return nil, eris.Wrapf(ErrSharedCurrentTerm, "termo %q nos grupos %d e %d", term, prev, i)
				}
				continue
			}
			v.currentIndex[term] = i
		}
	}

	return v, nil
}

// MustNew é como New mas entra em pânico se os grupos forem inválidos
func MustNew(groups []TermGroup, opts ...Option) *Vocabulary {
	v, err := New(groups, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func validateGroup(index int, group TermGroup) error {
	if err := validate.Struct(group); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Kind() == reflect.Slice {
				return eris.Wrapf(ErrEmptyGroup, "grupo %d (%s)", index, fe.Field())
			}
			return eris.Wrapf(ErrEmptyTerm, "grupo %d (%s)", index, fe.Field())
		}
		return eris.Wrapf(err, "grupo %d", index)
	}

	for _, set := range [][]string{group.Legacy, group.Current} {
		seen := make(map[string]bool, len(set))
		for _, term := range set {
			if term != strings.ToLower(strings.TrimSpace(term)) {
				return eris.Wrapf(ErrTermNotNormalized, "grupo %d: %q", index, term)
			}
			if seen[term] {
				return eris.Wrapf(ErrDuplicateTerm, "grupo %d: %q", index, term)
			}
			seen[term] = true
		}
	}

	return nil
}

// LookupLegacy busca o grupo de um termo antigo (match exato, sem diferenciar maiúsculas)
func (v *Vocabulary) LookupLegacy(term string) (TermGroup, bool) {
	i, ok := v.legacyIndex[strings.ToLower(term)]
	if !ok {
		return TermGroup{}, false
	}
	return v.groups[i].Clone(), true
}

// LookupCurrent busca o grupo de um termo novo (match exato, sem diferenciar maiúsculas)
func (v *Vocabulary) LookupCurrent(term string) (TermGroup, bool) {
	i, ok := v.currentIndex[strings.ToLower(term)]
	if !ok {
		return TermGroup{}, false
	}
	return v.groups[i].Clone(), true
}

// IsLegacy indica se o termo pertence ao vocabulário antigo
func (v *Vocabulary) IsLegacy(term string) bool {
	_, ok := v.legacyIndex[strings.ToLower(term)]
	return ok
}

// IsCurrent indica se o termo pertence ao vocabulário novo
func (v *Vocabulary) IsCurrent(term string) bool {
	_, ok := v.currentIndex[strings.ToLower(term)]
	return ok
}

// Groups retorna uma cópia dos grupos na ordem de declaração
func (v *Vocabulary) Groups() []TermGroup {
	out := make([]TermGroup, len(v.groups))
	for i, g := range v.groups {
		out[i] = g.Clone()
	}
	return out
}

// Len retorna a quantidade de grupos
func (v *Vocabulary) Len() int {
	return len(v.groups)
}
