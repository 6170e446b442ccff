package bytesutil

// IsSpace reports whether c is an ASCII whitespace character.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// LStrip returns data without its leading ASCII whitespaces.
func LStrip(data []byte) []byte {
	for i, c := range data {
		if !IsSpace(c) {
			return data[i:]
		}
	}

	return data[len(data):]
}

// ToLowerASCII lowercases ASCII letters of src into dst, leaving any other byte untouched.
// The result is appended to dst, so passing a nil dst always allocates a new slice.
func ToLowerASCII(dst, src []byte) []byte {
	for _, c := range src {
		if 'A' <= c && c <= 'Z' {
			c |= 0x20
		}

		dst = append(dst, c)
	}

	return dst
}

// IsLowerASCII reports whether data contains no uppercase ASCII letters.
func IsLowerASCII(data []byte) bool {
	for _, c := range data {
		if 'A' <= c && c <= 'Z' {
			return false
		}
	}

	return true
}
