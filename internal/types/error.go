package types

import "fmt"

// CustomError carries an HTTP status and an error type up to the app error handler
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.Code, e.Message)
}

// NewCustomError builds a CustomError
func NewCustomError(code int, typ, format string, args ...interface{}) *CustomError {
	return &CustomError{Code: code, Message: fmt.Sprintf(format, args...), Type: typ}
}
