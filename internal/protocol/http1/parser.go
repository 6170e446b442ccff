package http1

import (
	"bytes"
	"unicode/utf8"

	"github.com/indigo-web/reqenv/config"
	"github.com/indigo-web/reqenv/environ"
	"github.com/indigo-web/reqenv/http/proto"
	"github.com/indigo-web/reqenv/http/status"
	"github.com/indigo-web/reqenv/internal/bytesutil"
	"github.com/indigo-web/reqenv/internal/uridecode"
	"github.com/indigo-web/utils/uf"
	"golang.org/x/text/encoding/unicode"
)

var crlfcrlf = []byte("\r\n\r\n")

// Parser turns a complete request head into an environ.Environ. It holds no state except
// the config, therefore a single instance can be used by any number of goroutines at once.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		cfg: cfg,
	}
}

// Parse parses the request head, which must be terminated by an empty line. Everything past
// the empty line isn't a part of the head and is ignored. Returned errors are always one of
// the status.HTTPError sentinels, and no environment is returned alongside them.
//
// The input isn't retained: the environment owns a private copy of every byte it refers to.
func (p *Parser) Parse(data []byte) (*environ.Environ, error) {
	if end := bytes.Index(data, crlfcrlf); end != -1 {
		data = data[:end]
	}

	// all the values are sub-slices of this single copy, capped so that appending to one
	// of them never overwrites its neighbour
	head := bytes.Clone(data)
	lines := bytesutil.SplitCRLF(head)
	if last := len(lines) - 1; last > 0 && len(lines[last]) == 0 {
		// buffer without the empty line, but still ending with CRLF
		lines = lines[:last]
	}

	requestLine, headerLines := lines[0], lines[1:]
	if len(requestLine) > p.cfg.URI.RequestLineSize.Maximal {
		return nil, status.ErrRequestLineTooLong
	}

	fields := make(map[string][]byte, len(environ.Reserved)+min(len(headerLines), p.cfg.Headers.Number.Default))
	if err := parseRequestLine(requestLine, fields); err != nil {
		return nil, err
	}

	if len(headerLines) > p.cfg.Headers.Number.Maximal {
		return nil, status.ErrTooManyHeaders
	}

	for _, line := range headerLines {
		if err := p.parseHeaderLine(line, fields); err != nil {
			return nil, err
		}
	}

	return environ.New(fields, decodePath(fields[environ.KeyPath])), nil
}

func parseRequestLine(line []byte, fields map[string][]byte) error {
	tokens := bytesutil.SplitN(line, ' ', 2)
	if len(tokens) != 3 || len(tokens[0]) == 0 || bytes.IndexByte(tokens[2], ' ') != -1 {
		return status.ErrMalformedRequestLine
	}

	// the line belongs to our own copy, so tokens are lowercased in-place
	reqMethod := bytesutil.ToLowerASCII(tokens[0][:0], tokens[0])
	reqProto := bytesutil.ToLowerASCII(tokens[2][:0], tokens[2])
	if proto.FromBytes(reqProto) == proto.Unknown {
		return status.ErrUnsupportedProtocol
	}

	target := tokens[1]
	var path, query []byte

	switch {
	case uf.B2S(target) == "*" && uf.B2S(reqMethod) == "options":
		path, query = target, []byte{}
	case len(target) == 0 || target[0] != '/':
		return status.ErrMissingLeadingSlash
	default:
		var found bool
		path, query, found = bytesutil.Cut(target, '?')
		if !found {
			query = []byte{}
		}
	}

	fields[environ.KeyMethod] = capped(reqMethod)
	fields[environ.KeyProtocol] = capped(reqProto)
	fields[environ.KeyPath] = capped(path)
	fields[environ.KeyQueryString] = capped(query)

	return nil
}

func (p *Parser) parseHeaderLine(line []byte, fields map[string][]byte) error {
	name, value, found := bytesutil.Cut(line, ':')
	if !found {
		return status.ErrMalformedHeaderLine
	}

	key := environ.HeaderPrefix + uf.B2S(bytesutil.ToLowerASCII(name[:0], name))
	value = capped(bytesutil.LStrip(value))

	if p.cfg.Headers.Duplicates == config.Join {
		if prev, seen := fields[key]; seen {
			value = join(prev, value)
		}
	}

	fields[key] = value

	return nil
}

func join(prev, value []byte) []byte {
	const sep = ", "

	joined := make([]byte, 0, len(prev)+len(sep)+len(value))
	joined = append(joined, prev...)
	joined = append(joined, sep...)

	return append(joined, value...)
}

func capped(b []byte) []byte {
	return b[:len(b):len(b)]
}

// decodePath percent-decodes the path and interprets the result as UTF-8. Invalid sequences
// are replaced by U+FFFD, so this never fails.
func decodePath(raw []byte) string {
	decoded := uridecode.Decode(raw, nil)
	if utf8.Valid(decoded) {
		return string(decoded)
	}

	lossy, err := unicode.UTF8.NewDecoder().Bytes(decoded)
	if err != nil {
		return string(bytes.ToValidUTF8(decoded, []byte(string(utf8.RuneError))))
	}

	return string(lossy)
}
