package auth

import (
	"fmt"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// Error reports a failed token operation: the high-level operation name,
// the HTTP status (408 when the client itself timed out) and the parsed
// error body returned by the service.
type Error struct {
	Operation string
	Code      int
	Message   map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("[AuthError: [operation: %s | code: %d | message: %v]]", e.Operation, e.Code, e.Message)
}

func NewError(operation string, response *rest.Response) *Error {
	return &Error{
		Operation: operation,
		Code:      response.StatusCode,
		Message:   response.ErrorBody(),
	}
}
