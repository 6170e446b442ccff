package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = "GET /foo%20bar HTTP/1.0\r\nFoo: Bar\r\nA B C: D E F\r\n\r\n"

func dump(t *testing.T, input string, args ...string) (string, int) {
	var out bytes.Buffer
	code := run(args, strings.NewReader(input), &out)

	return out.String(), code
}

func TestRun(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, code := dump(t, sample)
		require.Equal(t, exitOK, code)
		require.JSONEq(t, `{
			"fields": {
				"method": "get",
				"protocol": "http/1.0",
				"path": "/foo%20bar",
				"query_string": "",
				"http_foo": "Bar",
				"http_a b c": "D E F"
			},
			"decoded_path": "/foo bar"
		}`, out)
	})

	t.Run("text", func(t *testing.T) {
		out, code := dump(t, sample, "-format", "TEXT")
		require.Equal(t, exitOK, code)
		require.Equal(t, strings.Join([]string{
			`http_a b c="D E F"`,
			`http_foo="Bar"`,
			`method="get"`,
			`path="/foo%20bar"`,
			`protocol="http/1.0"`,
			`query_string=""`,
			`(decoded path)="/foo bar"`,
			"", "",
		}, "\n"), out)
	})

	t.Run("ast", func(t *testing.T) {
		out, code := dump(t, sample, "-format", "ast")
		require.Equal(t, exitOK, code)
		require.Contains(t, out, `decoded_path: "/foo bar"`)
		require.Contains(t, out, "fields:\n")
		require.Contains(t, out, `  http_foo: "Bar"`)
		require.Contains(t, out, `type: "environ"`)
	})

	t.Run("join duplicates", func(t *testing.T) {
		out, code := dump(t, "GET / HTTP/1.1\r\nA: 1\r\nA: 2\r\n\r\n", "-format", "text", "-join-duplicates")
		require.Equal(t, exitOK, code)
		require.Contains(t, out, `http_a="1, 2"`)
	})

	t.Run("rejected request does not stop the stream", func(t *testing.T) {
		out, code := dump(t, "BADLINE\r\n\r\nGET /ok HTTP/1.1\r\n\r\n", "-format", "text")
		require.Equal(t, exitRejected, code)
		require.Contains(t, out, `path="/ok"`)
	})

	t.Run("too many headers", func(t *testing.T) {
		_, code := dump(t, "GET / HTTP/1.1\r\nA: 1\r\nB: 2\r\n\r\n", "-max-headers", "1")
		require.Equal(t, exitRejected, code)
	})

	t.Run("incomplete head", func(t *testing.T) {
		_, code := dump(t, "GET / HTTP/1.1\r\n")
		require.Equal(t, exitRejected, code)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, code := dump(t, sample, "-format", "yaml")
		require.Equal(t, exitFailure, code)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "request.txt")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

		out, code := dump(t, "", "-format", "text", path)
		require.Equal(t, exitOK, code)
		require.Contains(t, out, `http_foo="Bar"`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, code := dump(t, "", filepath.Join(t.TempDir(), "nope"))
		require.Equal(t, exitFailure, code)
	})
}
