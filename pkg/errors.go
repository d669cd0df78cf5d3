package pkg

import "fmt"

// AppError is the error shape surfaced by HTTP handlers.
//
// Code is a stable machine-readable identifier (also used as the error_code
// sub-field for gate violations such as DESKTOP_UPLOAD_BLOCKED), Message is
// human-readable, and HTTPStatus is the status the handler responds with.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the JSON body written for failed requests. The wrapped cause
// is never serialized.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
