// Command envdump reads raw HTTP/1.x request heads from a file or stdin and prints the
// environment of each of them.
//
//	printf 'GET /foo%%20bar HTTP/1.1\r\nHost: localhost\r\n\r\n' | envdump -format text
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/indigo-web/reqenv"
	"github.com/indigo-web/reqenv/config"
	"github.com/indigo-web/reqenv/environ"
	"github.com/indigo-web/reqenv/environ/envjson"
	"github.com/indigo-web/reqenv/environ/envnode"
	"github.com/indigo-web/reqenv/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/shapestone/shape-core/pkg/ast"
)

const (
	exitOK = iota
	exitFailure
	exitRejected
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("envdump: ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	flags := flag.NewFlagSet("envdump", flag.ContinueOnError)
	format := flags.String("format", "json", "output format: json, text or ast")
	join := flags.Bool("join-duplicates", false, "comma-join repeated headers instead of keeping the last one")
	maxHeaders := flags.Int("max-headers", config.Default().Headers.Number.Maximal, "maximal number of header lines")
	if err := flags.Parse(args); err != nil {
		return exitFailure
	}

	printer, err := printerFor(*format)
	if err != nil {
		log.Print(err)
		return exitFailure
	}

	source := stdin
	if path := flags.Arg(0); path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			log.Print(err)
			return exitFailure
		}

		defer file.Close()
		source = file
	}

	cfg := config.Default()
	cfg.Headers.Number.Maximal = *maxHeaders
	if *join {
		cfg.Headers.Duplicates = config.Join
	}

	stream := reqenv.New(cfg).Stream(source)
	code := exitOK

	for n := 1; ; n++ {
		env, err := stream.Next()
		switch {
		case errors.Is(err, io.EOF):
			return code
		case err != nil:
			var httpErr status.HTTPError
			if !errors.As(err, &httpErr) {
				log.Printf("request #%d: %s", n, err)
				return exitFailure
			}

			log.Printf("request #%d rejected: %s %s: %s",
				n, status.StringCode(httpErr.Code), status.Text(httpErr.Code), httpErr.Message,
			)
			code = exitRejected

			if errors.Is(err, status.ErrIncompleteHead) || errors.Is(err, status.ErrHeadTooLarge) {
				// the rest of the stream can't be split into heads anymore
				return code
			}

			continue
		}

		if err = printer(stdout, env); err != nil {
			log.Print(err)
			return exitFailure
		}
	}
}

type printer func(io.Writer, *environ.Environ) error

func printerFor(format string) (printer, error) {
	switch {
	case strcomp.EqualFold(format, "json"):
		return printJSON, nil
	case strcomp.EqualFold(format, "text"):
		return printText, nil
	case strcomp.EqualFold(format, "ast"):
		return printAST, nil
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
}

func printJSON(w io.Writer, env *environ.Environ) error {
	if err := envjson.Encode(w, env); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func printText(w io.Writer, env *environ.Environ) error {
	for key, value := range env.All() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, strconv.Quote(string(value))); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "(decoded path)=%s\n\n", strconv.Quote(env.Path()))
	return err
}

func printAST(w io.Writer, env *environ.Environ) error {
	if err := writeNode(w, envnode.ToNode(env), 0); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

func writeNode(w io.Writer, node ast.SchemaNode, depth int) error {
	switch n := node.(type) {
	case *ast.ObjectNode:
		props := n.Properties()
		keys := make([]string, 0, len(props))
		for key := range props {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			if _, err := fmt.Fprintf(w, "%*s%s:", depth*2, "", key); err != nil {
				return err
			}

			if _, isObject := props[key].(*ast.ObjectNode); isObject {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			} else if _, err := io.WriteString(w, " "); err != nil {
				return err
			}

			if err := writeNode(w, props[key], depth+1); err != nil {
				return err
			}
		}

		return nil
	case *ast.LiteralNode:
		_, err := fmt.Fprintf(w, "%q\n", n.Value())
		return err
	default:
		_, err := fmt.Fprintf(w, "%T\n", node)
		return err
	}
}
