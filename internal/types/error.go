package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	NotFound             ErrorCode = "NOT_FOUND"
	InvalidAmount        ErrorCode = "INVALID_AMOUNT"
	InvalidOrdinal       ErrorCode = "INVALID_ORDINAL"
	NoStake              ErrorCode = "NO_STAKE"
	NoClaimable          ErrorCode = "NO_CLAIMABLE"
	TransferFailure      ErrorCode = "TRANSFER_FAILURE"
	ServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
)

func (c ErrorCode) String() string {
	return string(c)
}

// Error is an error carrying the http status and error code reported to API callers.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return &Error{
		Err:        errors.New(msg),
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}

func NewValidationFailedError(err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: http.StatusBadRequest,
		ErrorCode:  ValidationError,
	}
}

// CodeOf returns the error code of err, or InternalServiceError when err does
// not carry one.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.ErrorCode
	}
	return InternalServiceError
}
