package requestgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
)

type Header struct {
	Key, Value string
}

// Headers generates n headers with long, but stable names. The last one is always Host.
func Headers(n int) []Header {
	hdrs := make([]Header, 0, n)

	for i := 0; i < n-1; i++ {
		hdrs = append(hdrs, Header{
			Key:   "Some-Random-Header-Name-Nobody-Cares-About" + strconv.Itoa(i),
			Value: strings.Repeat("b", 100),
		})
	}

	return append(hdrs, Header{Key: "Host", Value: "localhost"})
}

// RandomHeaders generates n headers with random alphanumeric names of the given length,
// each of them valued by its own name.
func RandomHeaders(n, length int) []Header {
	hdrs := make([]Header, n)

	for i := range hdrs {
		name := uniuri.NewLen(length)
		hdrs[i] = Header{Key: name, Value: name}
	}

	return hdrs
}

func HeadersBlock(hdrs []Header) (buff []byte) {
	for _, pair := range hdrs {
		buff = fmt.Appendf(buff, "%s: %s\r\n", pair.Key, pair.Value)
	}

	return buff
}

// Generate renders a complete request head, terminating empty line included.
func Generate(method, target string, hdrs []Header) (request []byte) {
	request = append(request, method+" "+target+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
