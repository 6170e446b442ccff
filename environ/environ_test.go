package environ

import (
	"testing"

	"github.com/indigo-web/reqenv/http/method"
	"github.com/indigo-web/reqenv/http/proto"
	"github.com/stretchr/testify/require"
)

func sample() *Environ {
	return New(map[string][]byte{
		KeyMethod:           []byte("get"),
		KeyProtocol:         []byte("http/1.1"),
		KeyPath:             []byte("/foo%20bar"),
		KeyQueryString:      []byte("a=b"),
		"http_host":         []byte("localhost"),
		"http_a b c":        []byte("D E F"),
		"http_content-type": []byte("text/plain"),
	}, "/foo bar")
}

func TestEnviron(t *testing.T) {
	env := sample()

	t.Run("structural", func(t *testing.T) {
		require.Equal(t, "get", env.RawMethod())
		require.Equal(t, method.GET, env.Method())
		require.Equal(t, proto.HTTP11, env.Protocol())
		require.Equal(t, "/foo%20bar", env.RawPath())
		require.Equal(t, "/foo bar", env.Path())
		require.Equal(t, "a=b", env.Query())
		require.False(t, env.IsAsteriskForm())
		require.Equal(t, 7, env.Len())
	})

	t.Run("get", func(t *testing.T) {
		value, found := env.Get("http_host")
		require.True(t, found)
		require.Equal(t, "localhost", string(value))

		_, found = env.Get("host")
		require.False(t, found)
		require.Empty(t, env.Value("http_missing"))
		require.True(t, env.Has(KeyQueryString))
	})

	t.Run("header", func(t *testing.T) {
		for _, name := range []string{"Host", "HOST", "host"} {
			value, found := env.Header(name)
			require.True(t, found, name)
			require.Equal(t, "localhost", value)
		}

		value, found := env.Header("A B C")
		require.True(t, found)
		require.Equal(t, "D E F", value)

		_, found = env.Header("http_host")
		require.False(t, found)
	})

	t.Run("keys", func(t *testing.T) {
		require.Equal(t, []string{
			"http_a b c", "http_content-type", "http_host", "method", "path", "protocol", "query_string",
		}, env.Keys())
	})

	t.Run("all", func(t *testing.T) {
		var keys []string
		for key, value := range env.All() {
			keys = append(keys, key)
			require.NotNil(t, value)
		}

		require.Equal(t, env.Keys(), keys)
	})

	t.Run("headers", func(t *testing.T) {
		headers := make(map[string]string)
		for name, value := range env.Headers() {
			headers[name] = string(value)
		}

		require.Equal(t, map[string]string{
			"a b c":        "D E F",
			"content-type": "text/plain",
			"host":         "localhost",
		}, headers)
	})

	t.Run("early break", func(t *testing.T) {
		var n int
		for range env.Headers() {
			n++
			break
		}

		require.Equal(t, 1, n)
	})
}

func TestEqual(t *testing.T) {
	require.True(t, sample().Equal(sample()))

	other := sample()
	other.fields["http_host"] = []byte("example.com")
	require.False(t, sample().Equal(other))

	other = sample()
	other.path = "/foo%20bar"
	require.False(t, sample().Equal(other))

	var nilEnv *Environ
	require.True(t, nilEnv.Equal(nil))
	require.False(t, sample().Equal(nil))
}

func TestKeyKinds(t *testing.T) {
	for _, key := range Reserved {
		require.True(t, IsReserved(key))
		require.False(t, IsHeaderKey(key))
	}

	require.True(t, IsHeaderKey("http_host"))
	require.False(t, IsReserved("http_method"))
}

func TestAsteriskForm(t *testing.T) {
	env := New(map[string][]byte{
		KeyMethod:      []byte("options"),
		KeyProtocol:    []byte("http/1.0"),
		KeyPath:        []byte("*"),
		KeyQueryString: {},
	}, "*")

	require.True(t, env.IsAsteriskForm())
	require.Equal(t, method.OPTIONS, env.Method())
	require.Equal(t, proto.HTTP10, env.Protocol())
}
