package gatecoin

import (
	"fmt"
	"strings"
)

// HTTPError is returned when the server answers with a non-2xx status code.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("gatecoin: server responded with a %d status code", e.StatusCode)
}

// FieldError describes one wire field that could not be mapped.
type FieldError struct {
	Field   string // path of the field, e.g. currencyPairs[0].tradingCode
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors collects every field error found while mapping one payload.
type FieldErrors []FieldError

func (errs FieldErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// SchemaError is returned by an endpoint whose payload failed to map. No partial result
// accompanies it.
type SchemaError struct {
	Endpoint string
	Fields   FieldErrors
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("gatecoin: bad %s payload: %s", e.Endpoint, e.Fields.Error())
}

func (e *SchemaError) Unwrap() error {
	return e.Fields
}
