package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes a request head can be rejected with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	RequestURITooLong           Code = 414 // RFC 9110, 15.5.15
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5
	HTTPVersionNotSupported     Code = 505 // RFC 9110, 15.6.6
)

// KnownCodes lists every code declared above.
var KnownCodes = []Code{
	BadRequest, RequestURITooLong, RequestHeaderFieldsTooLarge, HTTPVersionNotSupported,
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestURITooLong:
		return "Request URI Too Long"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}

// StringCode returns the code as a decimal string.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
