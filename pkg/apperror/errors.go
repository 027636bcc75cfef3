package apperror

import (
	"fmt"
	"net/http"
)

// GenericFailure is the fallback message when the backend supplied no usable
// detail payload.
const GenericFailure = "Something went wrong"

// AppError is a structured error that maps to HTTP responses on the local UI
// and carries the backend-reported status when the failure originated there.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to the UI)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Local input validation (VAL) ----

func ErrInvalidRecipient() *AppError {
	return New("VAL_001", "Recipient username is required", http.StatusBadRequest)
}

func ErrInvalidToAccount() *AppError {
	return New("VAL_002", "Recipient account ID must be a positive number", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_003", "Amount must be a positive number", http.StatusBadRequest)
}

func ErrInvalidPublicKey() *AppError {
	return New("VAL_004", "Public key is required", http.StatusBadRequest)
}

// Validation returns a VAL_000 error with a caller-supplied message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Session & credentials (AUTH) ----

func ErrLoginFailed(reason string) *AppError {
	if reason == "" {
		reason = "Login failed"
	}
	return New("AUTH_001", reason, http.StatusUnauthorized)
}

func ErrInvalidToken(err error) *AppError {
	return Wrap("AUTH_002", "Invalid or expired session token", http.StatusUnauthorized, err)
}

func ErrNotAuthenticated() *AppError {
	return New("AUTH_003", "Not authenticated", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_004", "Unauthorized access", http.StatusForbidden)
}

// ---- Backend-reported failures (BKD) ----

// BackendError carries a message extracted from the backend error payload
// verbatim, along with the status the backend answered with.
func BackendError(status int, message string) *AppError {
	if message == "" {
		message = GenericFailure
	}
	return New("BKD_001", message, status)
}

// ---- Transport failures (NET) ----

// NetworkError is used when no backend response was received at all.
func NetworkError(err error) *AppError {
	return Wrap("NET_001", err.Error(), http.StatusBadGateway, err)
}

// ---- System (SYS) ----

// InternalError wraps an unexpected client-local failure.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal client error", http.StatusInternalServerError, err)
}
