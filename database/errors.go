package database

import "errors"

// ErrNotFound indica que o registro procurado não existe.
var ErrNotFound = errors.New("registro não encontrado")
