package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweeplab/minesweeper-go/internal/model"
	"github.com/sweeplab/minesweeper-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeSkinNotFound       = "SKIN_NOT_FOUND"
	CodeAlreadyOwned       = "ALREADY_OWNED"
	CodeNotOwned           = "NOT_OWNED"
	CodePriceMismatch      = "PRICE_MISMATCH"
	CodeNotUnlocked        = "NOT_UNLOCKED"
	CodeInvalidDifficulty  = "INVALID_DIFFICULTY"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAccountNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAccountNotFound, "Account not found"}}
	case errors.Is(err, model.ErrInsufficientCoins):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, "Not enough coins"}}
	case errors.Is(err, model.ErrSkinNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSkinNotFound, "Skin not in catalog"}}
	case errors.Is(err, model.ErrSkinAlreadyOwned):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyOwned, "Skin already owned"}}
	case errors.Is(err, model.ErrSkinNotOwned):
		return &httpError{http.StatusConflict, APIError{CodeNotOwned, "Skin not owned"}}
	case errors.Is(err, model.ErrPriceMismatch):
		return &httpError{http.StatusBadRequest, APIError{CodePriceMismatch, "Cost does not match catalog price"}}
	case errors.Is(err, model.ErrTitleNotUnlocked):
		return &httpError{http.StatusConflict, APIError{CodeNotUnlocked, "Title not unlocked"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInvalidDifficultyError creates an error for an unknown difficulty tier
func NewInvalidDifficultyError() error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, normal or hard"}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
