package search

import "errors"

var (
	ErrInvalidRequest = errors.New("parâmetros de busca inválidos")
	ErrSourceFailed   = errors.New("falha ao consultar a fonte de publicações")
	ErrSearchCanceled = errors.New("busca cancelada")
)
