package status

import "errors"

// HTTPError is an error that knows which status code it renders to.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf extracts a status code out of an error. Errors carrying no code
// (including wrapped non-HTTP ones) are treated as internal.
func CodeOf(err error) Code {
	var http HTTPError
	if errors.As(err, &http) {
		return http.Code
	}

	return InternalServerError
}

var (
	ErrShutdown = NewError(ServiceUnavailable, "graceful shutdown")

	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrMalformedHeader      = NewError(BadRequest, "malformed header line")
	ErrBadContentLength     = NewError(BadRequest, "invalid Content-Length value")
	ErrMissingHostHeader    = NewError(BadRequest, "Host header is required for HTTP/1.1")
	ErrHeaderTooLong        = NewError(BadRequest, "header line is too long")
	ErrReadFailure          = NewError(BadRequest, "failed to read from connection")
	ErrNotFound             = NewError(NotFound, "not found")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")
)
