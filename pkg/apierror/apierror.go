package apierror

import "net/http"

// APIError carries an HTTP status together with the detail string that is
// serialized to the client as {"detail": ...}.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Detail
}

func New(status int, detail string) *APIError {
	return &APIError{Status: status, Detail: detail}
}

func Unauthorized(detail string) *APIError {
	return New(http.StatusUnauthorized, detail)
}

func NotFound(detail string) *APIError {
	return New(http.StatusNotFound, detail)
}

// Conflict reports a duplicate resource. Duplicate logins go out as 400
// rather than 409 and clients depend on that.
func Conflict(detail string) *APIError {
	return New(http.StatusBadRequest, detail)
}

func Validation(detail string) *APIError {
	return New(http.StatusUnprocessableEntity, detail)
}

func Internal(detail string) *APIError {
	return New(http.StatusInternalServerError, detail)
}
