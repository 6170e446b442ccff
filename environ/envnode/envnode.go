// Package envnode converts environments into shape-core AST nodes and back, so they can be
// processed by the same tooling as the rest of parsed HTTP messages.
//
// An environment is mapped to an ObjectNode:
//
//	{ "type": "environ", "decoded_path": "/foo bar",
//	  "fields": { "method": "get", "path": "/foo%20bar", "http_host": "localhost", ... } }
package envnode

import (
	"errors"
	"fmt"

	"github.com/indigo-web/reqenv/environ"
	"github.com/shapestone/shape-core/pkg/ast"
)

const nodeType = "environ"

var zeroPos = ast.Position{}

// ToNode returns the AST representation of the environment.
func ToNode(env *environ.Environ) ast.SchemaNode {
	fields := make(map[string]ast.SchemaNode, env.Len())
	for key, value := range env.All() {
		fields[key] = ast.NewLiteralNode(string(value), zeroPos)
	}

	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":         ast.NewLiteralNode(nodeType, zeroPos),
		"decoded_path": ast.NewLiteralNode(env.Path(), zeroPos),
		"fields":       ast.NewObjectNode(fields, zeroPos),
	}, zeroPos)
}

// FromNode converts a node produced by ToNode back into an environment.
func FromNode(node ast.SchemaNode) (*environ.Environ, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if kind, _ := literal(props["type"]); kind != nodeType {
		return nil, fmt.Errorf("expected node of type %q, got %q", nodeType, kind)
	}

	decodedPath, ok := literal(props["decoded_path"])
	if !ok {
		return nil, errors.New("decoded_path: expected string literal")
	}

	fieldsObj, ok := props["fields"].(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("fields: expected ObjectNode, got %T", props["fields"])
	}

	fields := make(map[string][]byte, len(fieldsObj.Properties()))
	for key, valueNode := range fieldsObj.Properties() {
		value, ok := literal(valueNode)
		if !ok {
			return nil, fmt.Errorf("fields.%s: expected string literal", key)
		}

		fields[key] = []byte(value)
	}

	for _, key := range environ.Reserved {
		if _, found := fields[key]; !found {
			return nil, fmt.Errorf("fields: missing %q", key)
		}
	}

	return environ.New(fields, decodedPath), nil
}

func literal(node ast.SchemaNode) (string, bool) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", false
	}

	str, ok := lit.Value().(string)
	return str, ok
}
