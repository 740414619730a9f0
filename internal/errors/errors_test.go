package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"medicine not found", ErrMedicineNotFound, http.StatusNotFound, "MEDICINE_NOT_FOUND", "medicine not found"},
		{"wrapped not found", fmt.Errorf("get medicine 7: %w", ErrMedicineNotFound), http.StatusNotFound, "MEDICINE_NOT_FOUND", "medicine not found"},
		{"prescription not found", ErrPrescriptionNotFound, http.StatusNotFound, "PRESCRIPTION_NOT_FOUND", "prescription not found"},
		{"invalid filename", ErrInvalidFilename, http.StatusBadRequest, "INVALID_FILENAME", "invalid filename"},
		{"upload failed keeps cause", fmt.Errorf("%w: disk full", ErrUploadFailed), http.StatusInternalServerError, "UPLOAD_FAILED", "upload failed: disk full"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.ToErrorResponse().Error)
		})
	}
}
