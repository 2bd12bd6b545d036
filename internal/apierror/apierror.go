// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so the frontend always sees
// the same {status, mensagem} shape and no internal detail leaks out.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Status   string `json:"status"`
	Mensagem string `json:"mensagem"`
}

func New(mensagem string) *APIError {
	return &APIError{Status: "erro", Mensagem: mensagem}
}
