package proto

import "github.com/indigo-web/utils/uf"

// Proto is a protocol version a request head can be parsed for.
type Proto uint8

const (
	Unknown Proto = 0
	HTTP10  Proto = 1 << iota
	HTTP11

	HTTP1 = HTTP10 | HTTP11
)

// String returns the protocol token in its lowercased form, as it's stored in the environment.
func (p Proto) String() string {
	switch p {
	case HTTP10:
		return "http/1.0"
	case HTTP11:
		return "http/1.1"
	default:
		return ""
	}
}

// FromBytes recognizes an already lowercased protocol token. Anything except exactly
// http/1.0 or http/1.1 results in Unknown.
func FromBytes(lowered []byte) Proto {
	return FromString(uf.B2S(lowered))
}

// FromString is FromBytes for strings.
func FromString(lowered string) Proto {
	switch lowered {
	case "http/1.0":
		return HTTP10
	case "http/1.1":
		return HTTP11
	default:
		return Unknown
	}
}
