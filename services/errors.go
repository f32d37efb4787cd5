package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func notFound(format string, args ...interface{}) error {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...interface{}) error {
	return &ServiceError{StatusCode: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

// storeError turns a repository failure into a ServiceError. Validation
// failures become 400s, everything else is logged and reported as a 500.
func storeError(logger *zap.Logger, msg string, err error) error {
	var verr *models.DataValidationError
	if errors.As(err, &verr) {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: verr.Message}
	}
	logger.Error(msg, zap.Error(err))
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}
