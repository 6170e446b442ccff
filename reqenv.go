// Package reqenv turns raw HTTP/1.0 and HTTP/1.1 request heads into CGI/WSGI-like
// environments, ready to be handed over to a router.
//
//	env, err := reqenv.Parse([]byte("GET /foo%20bar?x=1 HTTP/1.1\r\nHost: localhost\r\n\r\n"))
//	if err != nil {
//		// respond with status.CodeOf(err)
//	}
//
//	env.Value("method")       // "get"
//	env.Value("path")         // "/foo%20bar"
//	env.Value("query_string") // "x=1"
//	env.Value("http_host")    // "localhost"
//	env.Path()                // "/foo bar"
package reqenv

import (
	"io"

	"github.com/indigo-web/reqenv/config"
	"github.com/indigo-web/reqenv/environ"
	"github.com/indigo-web/reqenv/internal/headreader"
	"github.com/indigo-web/reqenv/internal/protocol/http1"
)

// Parser is a configured request head parser. It's safe for concurrent use.
type Parser struct {
	cfg    *config.Config
	parser *http1.Parser
}

// New returns a parser with the given config. If nil is passed, config.Default() is used.
// The config must not be modified afterward.
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Parser{
		cfg:    cfg,
		parser: http1.NewParser(cfg),
	}
}

// Parse parses a complete request head, terminated by an empty line.
func (p *Parser) Parse(data []byte) (*environ.Environ, error) {
	return p.parser.Parse(data)
}

// Stream returns a reader parsing consecutive request heads from the source.
func (p *Parser) Stream(source io.Reader) *Stream {
	return &Stream{
		heads:  headreader.New(source, p.cfg.Head),
		parser: p.parser,
	}
}

// Stream reads request heads from an io.Reader one by one.
type Stream struct {
	heads  *headreader.Reader
	parser *http1.Parser
}

// Next reads and parses the next head. io.EOF is returned when the source is exhausted.
// Parse errors don't break the stream, so the next call proceeds with the following head.
func (s *Stream) Next() (*environ.Environ, error) {
	head, err := s.heads.Next()
	if err != nil {
		return nil, err
	}

	return s.parser.Parse(head)
}

// Parse parses a complete request head using the default config.
func Parse(data []byte) (*environ.Environ, error) {
	return http1.NewParser(config.Default()).Parse(data)
}
