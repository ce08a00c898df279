package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is the wire version of the response envelope. Bump only
// with a coordinated client release; the field is named exactly "v".
const envelopeVersion = 1

// Envelope is the uniform response shape for every API endpoint. Success
// responses carry Data, failures carry Error.
type Envelope struct {
	V       int       `json:"v" doc:"Envelope version"`
	Success bool      `json:"success" doc:"Whether the request succeeded"`
	Data    any       `json:"data,omitempty" doc:"Response payload"`
	Error   *APIError `json:"error,omitempty" doc:"Error details on failure"`
}

// EnvelopeTransformer wraps every response body in an Envelope. Registered
// on the huma config so handlers return bare bodies.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		return &Envelope{V: envelopeVersion, Success: false, Error: apiErr}, nil
	}
	success := len(status) > 0 && status[0] == '2'
	return &Envelope{V: envelopeVersion, Success: success, Data: v}, nil
}
