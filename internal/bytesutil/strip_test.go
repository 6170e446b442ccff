package bytesutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLStrip(t *testing.T) {
	require.Equal(t, "D E F ", string(LStrip([]byte(" \t D E F "))))
	require.Equal(t, "value", string(LStrip([]byte("value"))))
	require.Empty(t, LStrip([]byte("  \t")))
	require.Empty(t, LStrip(nil))
}

func TestToLowerASCII(t *testing.T) {
	t.Run("letters", func(t *testing.T) {
		require.Equal(t, "http/1.1", string(ToLowerASCII(nil, []byte("HTTP/1.1"))))
	})

	t.Run("non-ascii is untouched", func(t *testing.T) {
		src := []byte("X-\xd0\x9f\xff")
		require.Equal(t, "x-\xd0\x9f\xff", string(ToLowerASCII(nil, src)))
	})

	t.Run("appends to dst", func(t *testing.T) {
		require.Equal(t, "http_a b c", string(ToLowerASCII([]byte("http_"), []byte("A B C"))))
	})

	t.Run("does not modify src", func(t *testing.T) {
		src := []byte("GET")
		_ = ToLowerASCII(nil, src)
		require.Equal(t, "GET", string(src))
	})
}

func TestIsLowerASCII(t *testing.T) {
	require.True(t, IsLowerASCII([]byte("get")))
	require.True(t, IsLowerASCII([]byte("\xd0\x9f-1")))
	require.False(t, IsLowerASCII([]byte("Get")))
}
