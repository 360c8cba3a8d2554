package face

import (
	"fmt"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// Error reports a failed face operation with the upstream HTTP status and
// the parsed error body.
type Error struct {
	Operation string
	Code      int
	Message   map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("[FaceError: [operation: %s | code: %d | message: %v]]", e.Operation, e.Code, e.Message)
}

func NewError(operation string, response *rest.Response) *Error {
	return &Error{
		Operation: operation,
		Code:      response.StatusCode,
		Message:   response.ErrorBody(),
	}
}
