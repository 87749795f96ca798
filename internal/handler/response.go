package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sortsense/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType, "UNSUPPORTED_FILE_TYPE", "unsupported file type for this endpoint"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrClassificationFailed):
		return http.StatusBadGateway, "CLASSIFICATION_FAILED", "image classification failed"
	case errors.Is(err, domain.ErrInvoiceParseFailed):
		return http.StatusBadGateway, "INVOICE_PARSE_FAILED", "invoice parsing failed"
	case errors.Is(err, domain.ErrArchiveFailed):
		return http.StatusBadGateway, "ARCHIVE_FAILED", "upload archive to storage failed"
	case errors.Is(err, domain.ErrPersistenceFailed):
		return http.StatusInternalServerError, "PERSISTENCE_FAILED", "event write to warehouse failed"
	case errors.Is(err, domain.ErrAggregationFailed):
		return http.StatusInternalServerError, "AGGREGATION_FAILED", "kpi aggregation query failed"
	case errors.Is(err, domain.ErrResetUnavailable):
		return http.StatusForbidden, "RESET_UNAVAILABLE", "kpi reset is only available in local mode"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
