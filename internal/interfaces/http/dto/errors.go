package dto

import "net/http"

// Handler-level error codes. Domain errors carry their own codes and
// map through ErrorCodeHTTPStatus.
const (
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	// Resource errors
	"NOT_FOUND":        http.StatusNotFound,
	"ALREADY_EXISTS":   http.StatusConflict,
	"DUPLICATE_CODE":   http.StatusConflict,
	"PARTY_HAS_LEDGER": http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"ORPHAN_TRANSACTION": http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:          http.StatusBadRequest,
	"CONFIRMATION_REQUIRED":    http.StatusBadRequest,
	"INVALID_INPUT":            http.StatusBadRequest,
	"INVALID_AMOUNT":           http.StatusBadRequest,
	"INVALID_CODE":             http.StatusBadRequest,
	"INVALID_DISCOUNT":         http.StatusBadRequest,
	"INVALID_KEY":              http.StatusBadRequest,
	"INVALID_KIND":             http.StatusBadRequest,
	"INVALID_NAME":             http.StatusBadRequest,
	"INVALID_ORDER_REF":        http.StatusBadRequest,
	"INVALID_ORDER_TYPE":       http.StatusBadRequest,
	"INVALID_PARTY":            http.StatusBadRequest,
	"INVALID_PARTY_KIND":       http.StatusBadRequest,
	"INVALID_PAYMENT_METHOD":   http.StatusBadRequest,
	"INVALID_PRICE":            http.StatusBadRequest,
	"INVALID_QUANTITY":         http.StatusBadRequest,
	"INVALID_SELLABLE":         http.StatusBadRequest,
	"INVALID_SELLABLE_KIND":    http.StatusBadRequest,
	"INVALID_SELLABLE_REF":     http.StatusBadRequest,
	"INVALID_SIZE":             http.StatusBadRequest,
	"INVALID_TRANSACTION_TYPE": http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
