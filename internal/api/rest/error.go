package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeUnauthorized     ErrorCode = "unauthorized"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeServiceError  ErrorCode = "service_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// domainErrorStatus maps a domain sentinel error to an HTTP status and code
func domainErrorStatus(err error) (int, ErrorCode, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidTxHash),
		errors.Is(err, domain.ErrInvalidSignatureEncoding),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, errCodeBadRequest, true

	case errors.Is(err, domain.ErrPrincipalNotFound),
		errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrMintRequestNotFound):
		return http.StatusNotFound, errCodeNotFound, true

	case errors.Is(err, domain.ErrNoPendingChallenge),
		errors.Is(err, domain.ErrSignatureMismatch),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized, errCodeUnauthorized, true

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errCodeForbidden, true

	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrAlreadyListed),
		errors.Is(err, domain.ErrOwnListing),
		errors.Is(err, domain.ErrNotCancelable),
		errors.Is(err, domain.ErrNotActive),
		errors.Is(err, domain.ErrAlreadyBound),
		errors.Is(err, domain.ErrMintRequestNotReviewable),
		errors.Is(err, domain.ErrMintRequestNotApproved):
		return http.StatusConflict, errCodeConflict, true

	case errors.Is(err, domain.ErrExternalService):
		return http.StatusBadGateway, errCodeServiceError, true
	}

	return 0, "", false
}

// respondDomainError maps a domain error to its HTTP response, falling back
// to a logged 500 for anything unrecognized
func respondDomainError(c *gin.Context, err error) {
	if status, code, ok := domainErrorStatus(err); ok {
		respondWithError(c, status, code, err.Error())
		return
	}
	respondInternalError(c, err, "Internal server error")
}
