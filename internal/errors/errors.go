package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMedicineNotFound is returned when a medicine record does not exist.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrPrescriptionNotFound is returned when a stored prescription image does not exist.
	ErrPrescriptionNotFound = errors.New("prescription not found")
	// ErrUploadFailed wraps any storage or database failure while saving an upload.
	ErrUploadFailed = errors.New("upload failed")
	// ErrInvalidFilename is returned when an upload carries no usable file name.
	ErrInvalidFilename = errors.New("invalid filename")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors keep their
// full message so the cause of an upload failure reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMedicineNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMedicineNotFound.Error(), "MEDICINE_NOT_FOUND")
	case errors.Is(err, ErrPrescriptionNotFound):
		return NewHTTPError(http.StatusNotFound, ErrPrescriptionNotFound.Error(), "PRESCRIPTION_NOT_FOUND")
	case errors.Is(err, ErrInvalidFilename):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILENAME")
	case errors.Is(err, ErrUploadFailed):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "UPLOAD_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
