package services

import "net/http"

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func notFound(entity string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: entity + " not found"}
}

func invalid(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}
