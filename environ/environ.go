// Package environ holds the parsed request head in a form of a CGI/WSGI-like environment:
// a flat mapping of normalized field names onto raw field values.
//
// There are two kinds of keys. Structural ones (KeyMethod, KeyProtocol, KeyPath and
// KeyQueryString) are always presented. Every other key is derived from a request header:
// it's the header name, lowercased and prefixed by HeaderPrefix. The prefix is what tells
// them apart, so a header called "Method" ends up as "http_method" and never collides
// with the request method.
package environ

import (
	"bytes"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/indigo-web/reqenv/http/method"
	"github.com/indigo-web/reqenv/http/proto"
	"github.com/indigo-web/reqenv/internal/bytesutil"
	"github.com/indigo-web/utils/uf"
)

const (
	KeyMethod      = "method"
	KeyProtocol    = "protocol"
	KeyPath        = "path"
	KeyQueryString = "query_string"

	// HeaderPrefix is prepended to every header-derived key.
	HeaderPrefix = "http_"
)

// Reserved lists the structural keys.
var Reserved = [...]string{KeyMethod, KeyProtocol, KeyPath, KeyQueryString}

// Environ is a parsed request head. It's immutable: neither the parser nor the caller
// is allowed to modify it, including the byte slices returned by its methods.
type Environ struct {
	fields map[string][]byte
	path   string
}

// New wraps already normalized fields. The ownership over the map and all the values
// is passed to the Environ.
func New(fields map[string][]byte, decodedPath string) *Environ {
	return &Environ{
		fields: fields,
		path:   decodedPath,
	}
}

// Get returns the raw value by the normalized key.
func (e *Environ) Get(key string) (value []byte, found bool) {
	value, found = e.fields[key]
	return value, found
}

// Value returns the value by the normalized key as a string. Missing keys result in an
// empty string.
func (e *Environ) Value(key string) string {
	return uf.B2S(e.fields[key])
}

// Has tells whether the key is presented.
func (e *Environ) Has(key string) bool {
	_, found := e.fields[key]
	return found
}

// Header returns a value of the request header. The name is case-insensitive and
// mustn't include the HeaderPrefix.
func (e *Environ) Header(name string) (value string, found bool) {
	key := make([]byte, 0, len(HeaderPrefix)+len(name))
	key = bytesutil.ToLowerASCII(append(key, HeaderPrefix...), uf.S2B(name))
	raw, found := e.fields[string(key)]

	return uf.B2S(raw), found
}

// RawMethod returns the lowercased method token as it was sent.
func (e *Environ) RawMethod() string {
	return e.Value(KeyMethod)
}

// Method returns the recognized method. Extension methods result in method.Unknown,
// while still being available via RawMethod.
func (e *Environ) Method() method.Method {
	return method.Parse(e.RawMethod())
}

// Protocol returns the protocol version of the request.
func (e *Environ) Protocol() proto.Proto {
	return proto.FromString(e.Value(KeyProtocol))
}

// Path returns the percent-decoded request path. Invalid UTF-8 sequences are replaced by
// the U+FFFD character. Dot-segments are NOT normalized.
func (e *Environ) Path() string {
	return e.path
}

// RawPath returns the path exactly as it was sent, still percent-encoded.
func (e *Environ) RawPath() string {
	return e.Value(KeyPath)
}

// Query returns the raw query string, without the leading question mark.
func (e *Environ) Query() string {
	return e.Value(KeyQueryString)
}

// IsAsteriskForm tells whether the request is a server-wide OPTIONS request.
func (e *Environ) IsAsteriskForm() bool {
	return e.RawPath() == "*"
}

// Len returns the total number of fields, structural ones included.
func (e *Environ) Len() int {
	return len(e.fields)
}

// Keys returns all the keys in sorted order.
func (e *Environ) Keys() []string {
	return slices.Sorted(maps.Keys(e.fields))
}

// All iterates over all the fields in sorted by key order.
func (e *Environ) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, key := range e.Keys() {
			if !yield(key, e.fields[key]) {
				break
			}
		}
	}
}

// Headers iterates over the header-derived fields only in sorted order. The HeaderPrefix
// is stripped from the yielded names.
func (e *Environ) Headers() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for key, value := range e.All() {
			name, isHeader := strings.CutPrefix(key, HeaderPrefix)
			if !isHeader {
				continue
			}

			if !yield(name, value) {
				break
			}
		}
	}
}

// Equal compares the environments field by field.
func (e *Environ) Equal(other *Environ) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.path == other.path && maps.EqualFunc(e.fields, other.fields, bytes.Equal)
}

// IsHeaderKey tells whether the key is derived from a request header.
func IsHeaderKey(key string) bool {
	return strings.HasPrefix(key, HeaderPrefix)
}

// IsReserved tells whether the key is one of the structural keys.
func IsReserved(key string) bool {
	switch key {
	case KeyMethod, KeyProtocol, KeyPath, KeyQueryString:
		return true
	default:
		return false
	}
}
