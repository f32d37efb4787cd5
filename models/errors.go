package models

import "fmt"

// DataValidationError reports a request payload that cannot be turned into a model.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

// NewDataValidationError builds a DataValidationError with a formatted message.
func NewDataValidationError(format string, args ...interface{}) error {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}
