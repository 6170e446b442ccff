package status

import "errors"

// HTTPError is a request-scoped failure. It carries the status code a server is expected
// to respond with when rejecting the request. HTTPError is comparable, so the sentinels
// below can be matched with errors.Is.
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

var (
	ErrMalformedRequestLine = NewError(BadRequest, "request line must consist of exactly 3 tokens")
	ErrUnsupportedProtocol  = NewError(HTTPVersionNotSupported, "HTTP version not supported")
	ErrMissingLeadingSlash  = NewError(BadRequest, "request target must begin with a slash")
	ErrMalformedHeaderLine  = NewError(BadRequest, "header line has no colon")

	ErrRequestLineTooLong = NewError(RequestURITooLong, "request line is too long")
	ErrTooManyHeaders     = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrHeadTooLarge       = NewError(RequestHeaderFieldsTooLarge, "request head is too large")
	ErrIncompleteHead     = NewError(BadRequest, "request head is not terminated by an empty line")
)

// CodeOf returns the status code carried by err, or BadRequest if err isn't an HTTPError.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return BadRequest
}
