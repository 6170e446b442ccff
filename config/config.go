package config

// Duplicates decides what happens when a header occurs more than once in a single request.
type Duplicates uint8

const (
	// LastWins overwrites a previously seen value with the later one.
	LastWins Duplicates = iota + 1
	// Join merges all the values into one, separated by a comma, in the order of arrival.
	Join
)

func (d Duplicates) String() string {
	switch d {
	case LastWins:
		return "last-wins"
	case Join:
		return "join"
	default:
		return "unknown"
	}
}

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	URIRequestLineSize struct {
		Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize limits the length of the request line, CRLF excluded. Requests with
		// longer lines are rejected with status.ErrRequestLineTooLong.
		RequestLineSize URIRequestLineSize
	}

	Headers struct {
		// Number is responsible for the environment size.
		// Default value is a number of seats pre-allocated for headers in the environment.
		// Maximal value is maximum number of header lines allowed to be presented.
		Number HeadersNumber
		// Duplicates is the policy applied to repeated header names. Header names are compared
		// after normalization, so Foo and FOO are the same header.
		Duplicates Duplicates
	}

	Head struct {
		// MaxSize limits the whole request head, including the terminating empty line, when it's
		// being read from a stream.
		MaxSize int
		// ReadBufferSize is a size of a single read from the stream.
		ReadBufferSize int
	}
)

// Config holds limits and policies of the request parser.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI     URI
	Headers Headers
	Head    Head
}

// Default returns default config. The limits are permissive enough for any sane client.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				// allow at most 16kb of request line, which is effectively pretty much tolerant,
				// considering most web-entities limit it to 4-8kb.
				Maximal: 16 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 100,
			},
			Duplicates: LastWins,
		},
		Head: Head{
			MaxSize:        64 * 1024,
			ReadBufferSize: 2 * 1024,
		},
	}
}
