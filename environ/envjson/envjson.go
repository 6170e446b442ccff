// Package envjson renders environments as JSON documents and reads them back.
//
// Raw values are rendered as JSON strings, so values that aren't valid UTF-8 don't
// survive the round trip unchanged.
package envjson

import (
	"errors"
	"io"

	"github.com/indigo-web/reqenv/environ"
	json "github.com/json-iterator/go"
)

// keys are sorted so equal environments are always rendered into equal documents
var api = json.Config{
	SortMapKeys: true,
}.Froze()

var ErrMissingField = errors.New("document misses a structural field")

// Document is the JSON representation of an environment.
type Document struct {
	Fields      map[string]string `json:"fields"`
	DecodedPath string            `json:"decoded_path"`
}

// FromEnviron copies an environment into a Document.
func FromEnviron(env *environ.Environ) Document {
	fields := make(map[string]string, env.Len())
	for key, value := range env.All() {
		fields[key] = string(value)
	}

	return Document{
		Fields:      fields,
		DecodedPath: env.Path(),
	}
}

// Environ turns the document back into an environment.
func (d Document) Environ() (*environ.Environ, error) {
	fields := make(map[string][]byte, len(d.Fields))
	for key, value := range d.Fields {
		fields[key] = []byte(value)
	}

	for _, key := range environ.Reserved {
		if _, found := fields[key]; !found {
			return nil, ErrMissingField
		}
	}

	return environ.New(fields, d.DecodedPath), nil
}

// Encode writes the environment as a single JSON object into w.
func Encode(w io.Writer, env *environ.Environ) error {
	stream := api.BorrowStream(w)
	stream.WriteVal(FromEnviron(env))
	err := stream.Flush()
	api.ReturnStream(stream)

	return err
}

// Marshal returns the JSON encoding of the environment.
func Marshal(env *environ.Environ) ([]byte, error) {
	return api.Marshal(FromEnviron(env))
}

// Unmarshal parses a JSON document produced by Marshal or Encode.
func Unmarshal(data []byte) (*environ.Environ, error) {
	var doc Document
	if err := api.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return doc.Environ()
}
