package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure carries an error message together with the HTTP status code the
// handlers should answer with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (f *Failure) Error() string {
	return f.Message
}

// Validation marks bad or missing input, including lead-time violations.
func Validation(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// Conflict marks an unavailable room, including the payment-succeeded-but-
// room-taken reconciliation case. Distinct from Validation because the
// remediation differs.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

// NotFound marks an absent booking or room.
func NotFound(entityName string) error {
	return &Failure{Code: http.StatusNotFound, Message: entityName + " not found"}
}

// InvalidState marks an operation applied in a state that forbids it, such as
// cancelling a stay that has already begun.
func InvalidState(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// Upstream marks a payment-provider call that could not be completed or
// answered with a malformed response. The wrapped detail is for logs, the
// message is what the end user may see.
func Upstream(err error) error {
	return &Failure{Code: http.StatusBadGateway, Message: fmt.Sprintf("payment provider unavailable: %v", err)}
}

// Internal marks everything else.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &Failure{Code: http.StatusInternalServerError, Message: err.Error()}
}

// GetCode extracts the HTTP status from an error chain, defaulting to 500.
func GetCode(err error) int {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return http.StatusInternalServerError
}

// Is reports whether err is a Failure with the given code.
func Is(err error, code int) bool {
	var f *Failure
	return errors.As(err, &f) && f.Code == code
}
