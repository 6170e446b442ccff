package uridecode

import (
	"bytes"

	"github.com/indigo-web/reqenv/internal/hexconv"
)

// Decode translates percent-encoded octets of src into their true form, appending the
// result to buff. Malformed sequences (a '%' not followed by two hexadecimal digits)
// are kept as they are, so decoding never fails.
//
// If src contains no '%' at all, it is returned as is and buff is left untouched.
func Decode(src, buff []byte) []byte {
	i := bytes.IndexByte(src, '%')
	if i == -1 {
		return src
	}

	for ; i != -1; i = bytes.IndexByte(src, '%') {
		buff = append(buff, src[:i]...)
		src = src[i+1:]

		if len(src) < 2 {
			buff = append(buff, '%')
			continue
		}

		char, ok := hexconv.Pair(src[0], src[1])
		if !ok {
			buff = append(buff, '%')
			continue
		}

		buff = append(buff, char)
		src = src[2:]
	}

	return append(buff, src...)
}
