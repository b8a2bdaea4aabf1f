package vocabulary

import "github.com/rotisserie/eris"

var (
	ErrNoGroups            = eris.New("vocabulário sem grupos")
	ErrEmptyGroup          = eris.New("grupo sem termos antigos ou novos")
	ErrEmptyTerm           = eris.New("termo vazio")
	ErrTermNotNormalized   = eris.New("termo deve estar em minúsculas e sem espaços nas pontas")
	ErrDuplicateTerm       = eris.New("termo repetido dentro do grupo")
	ErrDuplicateLegacyTerm = eris.New("termo antigo presente em mais de um grupo")
	ErrSharedCurrentTerm   = eris.New("termo novo presente em mais de um grupo")
	ErrAmbiguousTerm       = eris.New("termo presente nos dois vocabulários")
	ErrUnsupportedFormat   = eris.New("formato de arquivo de vocabulário não suportado")
)
