package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Validation (VAL) ----

// Validation returns a caller-side input validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Listings & Receipts (LST) ----

func ErrNotFound(entity string) *AppError {
	return New("LST_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnknownBackend(name string) *AppError {
	return New("LST_002", fmt.Sprintf("unknown storage backend %q", name), http.StatusBadRequest)
}

// ---- Decentralized storage (STO) ----

func ErrUploadFailed(err error) *AppError {
	return Wrap("STO_001", "Upload to storage provider failed", http.StatusBadGateway, err)
}

func ErrDownloadFailed(err error) *AppError {
	return Wrap("STO_002", "Download from storage provider failed", http.StatusBadGateway, err)
}

func ErrBadSnapshot(err error) *AppError {
	return Wrap("STO_003", "Stored payload is not a valid snapshot", http.StatusBadGateway, err)
}

// ---- Wallet & chain (CHN) ----

// ErrNoWallet is the missing-wallet precondition failure, raised before any
// network attempt when no signer or RPC endpoint is configured.
func ErrNoWallet() *AppError {
	return New("CHN_001", "No wallet configured", http.StatusPreconditionFailed)
}

func ErrWalletNotConnected() *AppError {
	return New("CHN_002", "Wallet is not connected", http.StatusPreconditionFailed)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("CHN_003", "Chain RPC request failed", http.StatusBadGateway, err)
}

// ---- Sessions (SES) ----

func ErrInvalidToken() *AppError {
	return New("SES_001", "Invalid or expired session token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrPersistence wraps a document-store failure. Store write-through paths
// log and swallow this; read paths surface it.
func ErrPersistence(err error) *AppError {
	return Wrap("SYS_002", "Persistence backend error", http.StatusInternalServerError, err)
}
