package headreader

import (
	"bytes"
	"errors"
	"io"
	"slices"

	"github.com/indigo-web/reqenv/config"
	"github.com/indigo-web/reqenv/http/status"
)

var crlfcrlf = []byte("\r\n\r\n")

// Reader cuts request heads out of a stream. It buffers until the empty line terminating
// the head is met, keeping whatever was read past it for the next call. Bodies aren't
// recognized, so the stream is expected to consist of heads only.
type Reader struct {
	source  io.Reader
	cfg     config.Head
	pending []byte
}

func New(source io.Reader, cfg config.Head) *Reader {
	return &Reader{
		source: source,
		cfg:    cfg,
	}
}

// Next returns the next head, the terminating empty line included. The returned slice
// is owned by the caller. io.EOF is returned only if the stream ended cleanly between
// two heads, otherwise status.ErrIncompleteHead is.
func (r *Reader) Next() (head []byte, err error) {
	readSize := max(r.cfg.ReadBufferSize, 1)
	buff := slices.Grow(r.pending, readSize)
	r.pending = nil
	// the first search must cover pending data too
	var scanned int

	for {
		from := max(0, scanned-len(crlfcrlf)+1)
		if end := bytes.Index(buff[from:], crlfcrlf); end != -1 {
			end += from + len(crlfcrlf)
			if end > r.cfg.MaxSize {
				return nil, status.ErrHeadTooLarge
			}

			r.pending = bytes.Clone(buff[end:])
			return buff[:end:end], nil
		}

		scanned = len(buff)
		if len(buff) >= r.cfg.MaxSize {
			return nil, status.ErrHeadTooLarge
		}

		if len(buff) == cap(buff) {
			buff = slices.Grow(buff, readSize)
		}

		n, err := r.source.Read(buff[len(buff):cap(buff)])
		buff = buff[:len(buff)+n]

		if err != nil && n == 0 {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}

			if len(buff) == 0 {
				return nil, io.EOF
			}

			return nil, status.ErrIncompleteHead
		}
	}
}

// Read is a shorthand for reading exactly one head from the source.
func Read(source io.Reader, cfg config.Head) ([]byte, error) {
	return New(source, cfg).Next()
}
