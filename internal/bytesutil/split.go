package bytesutil

import "bytes"

var crlf = []byte("\r\n")

// SplitCRLF splits data into lines, separated by CRLF. Bare LF and CR bytes are kept
// as part of the line. Input ending with CRLF produces a trailing empty line, so the
// head "GET / HTTP/1.1\r\n\r\n" results in exactly 3 elements, the last two empty.
// The returned slices reference data.
func SplitCRLF(data []byte) [][]byte {
	lines := make([][]byte, 0, bytes.Count(data, crlf)+1)

	for {
		i := bytes.Index(data, crlf)
		if i == -1 {
			return append(lines, data)
		}

		lines = append(lines, data[:i])
		data = data[i+len(crlf):]
	}
}

// SplitN splits data by sep from left to right, stopping after maxSplits splits. So at most
// maxSplits+1 slices are returned, the last one holding the remainder of data as is.
// Negative maxSplits means no limit.
func SplitN(data []byte, sep byte, maxSplits int) [][]byte {
	var parts [][]byte
	if maxSplits >= 0 {
		parts = make([][]byte, 0, maxSplits+1)
	}

	for maxSplits != 0 {
		i := bytes.IndexByte(data, sep)
		if i == -1 {
			break
		}

		parts = append(parts, data[:i])
		data = data[i+1:]
		maxSplits--
	}

	return append(parts, data)
}

// Cut is a single-split shorthand for SplitN. It returns the piece before the first
// sep, the rest after it and whether sep was found at all.
func Cut(data []byte, sep byte) (before, after []byte, found bool) {
	if i := bytes.IndexByte(data, sep); i != -1 {
		return data[:i], data[i+1:], true
	}

	return data, nil, false
}
