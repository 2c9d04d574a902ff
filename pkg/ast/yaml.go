package ast

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

var formKeys = map[string]Tag{
	"list":   TagList,
	"call":   TagProcCall,
	"quote":  TagQuote,
	"lambda": TagLambda,
	"define": TagDefine,
}

// DecodeYAML converts a YAML node into an expression tree.
//
//	int / float scalars    -> Number
//	true / false           -> #t / #f
//	null                   -> ()
//	other scalars          -> Symbol
//	sequences              -> LIST forms
//	{quote: datum}         -> QUOTE form
//	{call|lambda|define|list: [...]} -> form with that tag
func DecodeYAML(node *yaml.Node) (Node, error) {
	if node == nil {
		return nil, fmt.Errorf("yaml datum: nil node")
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("yaml datum at line %d: document must hold one node", node.Line)
		}
		return DecodeYAML(node.Content[0])
	case yaml.AliasNode:
		return DecodeYAML(node.Alias)
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.SequenceNode:
		children, err := decodeSequence(node)
		if err != nil {
			return nil, err
		}
		return &Form{tag: TagList, children: children}, nil
	case yaml.MappingNode:
		return decodeTaggedForm(node)
	default:
		return nil, fmt.Errorf("yaml datum at line %d: unsupported node kind %d", node.Line, node.Kind)
	}
}

// ParseYAML decodes every document in data as a top-level form.
func ParseYAML(data []byte) ([]Node, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var forms []Node
	for {
		var doc yaml.Node
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return forms, nil
			}
			return nil, fmt.Errorf("yaml datum: %w", err)
		}
		form, err := DecodeYAML(&doc)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
}

func decodeScalar(node *yaml.Node) (Node, error) {
	switch node.ShortTag() {
	case "!!int":
		text := strings.ReplaceAll(node.Value, "_", "")
		n, ok := new(big.Int).SetString(text, 0)
		if !ok {
			return nil, fmt.Errorf("yaml datum at line %d: invalid integer %q", node.Line, node.Value)
		}
		return BigInt(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("yaml datum at line %d: %w", node.Line, err)
		}
		return Float(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("yaml datum at line %d: %w", node.Line, err)
		}
		return Bool(b), nil
	case "!!null":
		return &Form{tag: TagList}, nil
	default:
		if node.Value == "" {
			return nil, fmt.Errorf("yaml datum at line %d: empty symbol", node.Line)
		}
		return Sym(node.Value), nil
	}
}

func decodeSequence(node *yaml.Node) ([]Node, error) {
	children := make([]Node, 0, len(node.Content))
	for _, item := range node.Content {
		child, err := DecodeYAML(item)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func decodeTaggedForm(node *yaml.Node) (Node, error) {
	if len(node.Content) != 2 {
		return nil, fmt.Errorf("yaml datum at line %d: tagged form must have exactly one key", node.Line)
	}
	key, value := node.Content[0], node.Content[1]
	tag, ok := formKeys[key.Value]
	if key.Kind != yaml.ScalarNode || !ok {
		return nil, fmt.Errorf("yaml datum at line %d: unknown form key %q", key.Line, key.Value)
	}
	if tag == TagQuote {
		datum, err := DecodeYAML(value)
		if err != nil {
			return nil, err
		}
		return Quote(datum), nil
	}
	if value.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("yaml datum at line %d: %s form expects a sequence", value.Line, key.Value)
	}
	children, err := decodeSequence(value)
	if err != nil {
		return nil, err
	}
	return &Form{tag: tag, children: children}, nil
}
