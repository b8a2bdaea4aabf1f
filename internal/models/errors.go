package models

import "errors"

var (
	ErrInvalidStatus       = errors.New("status inválido (use: all, approved, pending, rejected, in-review)")
	ErrInvalidPermitType   = errors.New("tipo de licença inválido (use: all, bouw, sloop, kap, aanleg, monument)")
	ErrInvalidDate         = errors.New("data inválida (use o formato AAAA-MM-DD)")
	ErrInvalidDateRange    = errors.New("date_from posterior a date_to")
	ErrUnknownMunicipality = errors.New("município desconhecido")
)
