package query

import "errors"

// ErrInvalidQuery indica que el texto no corresponde a ninguna intención reconocida.
var ErrInvalidQuery = errors.New("invalid query")

// InvalidQueryError conserva el texto original de la consulta rechazada.
type InvalidQueryError struct {
	Query string
}

func (e *InvalidQueryError) Error() string {
	return "invalid query: " + e.Query
}

func (e *InvalidQueryError) Unwrap() error {
	return ErrInvalidQuery
}
