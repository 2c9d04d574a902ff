package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/btwooton/shaka-scheme/pkg/ast"
)

// Prelude describes how the global environment is populated before
// evaluation begins: each binding maps a symbol either to a named built-in
// or to a constant datum.
type Prelude struct {
	Path     string
	Name     string
	Bindings []PreludeBinding
}

// PreludeBinding is one entry of the prelude. Exactly one of Native and
// Constant is set.
type PreludeBinding struct {
	Symbol   string
	Native   string
	Constant ast.Node
}

// ValidationError aggregates prelude and fixture validation failures.
type ValidationError struct {
	Source string
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "prelude: invalid configuration"
	}
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "%s: ", e.Source)
	}
	b.WriteString("validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadPrelude parses a prelude manifest from disk.
func LoadPrelude(path string) (*Prelude, error) {
	if path == "" {
		return nil, fmt.Errorf("prelude: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("prelude: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("prelude: open %s: %w", absPath, err)
	}
	defer file.Close()

	prelude, err := ReadPrelude(file, absPath)
	if err != nil {
		return nil, err
	}
	prelude.Path = absPath
	return prelude, nil
}

// ParsePrelude parses an in-memory prelude manifest.
func ParsePrelude(data []byte, source string) (*Prelude, error) {
	return ReadPrelude(bytes.NewReader(data), source)
}

// ReadPrelude decodes and validates a prelude manifest. Unknown fields are errors.
func ReadPrelude(r io.Reader, source string) (*Prelude, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw preludeFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("prelude: %s is empty", source)
		}
		return nil, fmt.Errorf("prelude: parse %s: %w", source, err)
	}
	return raw.toPrelude(source)
}

// Lookup returns the binding for symbol, if present.
func (p *Prelude) Lookup(symbol string) (PreludeBinding, bool) {
	for _, binding := range p.Bindings {
		if binding.Symbol == symbol {
			return binding, true
		}
	}
	return PreludeBinding{}, false
}

type preludeFile struct {
	Name     string               `yaml:"name"`
	Bindings []preludeBindingFile `yaml:"bindings"`
}

type preludeBindingFile struct {
	Symbol   string    `yaml:"symbol"`
	Native   string    `yaml:"native"`
	Constant yaml.Node `yaml:"constant"`
}

func (f preludeFile) toPrelude(source string) (*Prelude, error) {
	prelude := &Prelude{
		Name:     strings.TrimSpace(f.Name),
		Bindings: make([]PreludeBinding, 0, len(f.Bindings)),
	}
	var issues []string
	if prelude.Name == "" {
		issues = append(issues, "name is required")
	}
	seen := make(map[string]struct{}, len(f.Bindings))
	for idx, entry := range f.Bindings {
		symbol := strings.TrimSpace(entry.Symbol)
		native := strings.TrimSpace(entry.Native)
		if symbol == "" {
			issues = append(issues, fmt.Sprintf("bindings[%d]: symbol is required", idx))
			continue
		}
		if _, dup := seen[symbol]; dup {
			issues = append(issues, fmt.Sprintf("bindings[%d]: duplicate symbol %q", idx, symbol))
			continue
		}
		seen[symbol] = struct{}{}
		hasConstant := entry.Constant.Kind != 0
		if (native == "") == !hasConstant {
			issues = append(issues, fmt.Sprintf("bindings[%d] (%s): exactly one of native or constant must be set", idx, symbol))
			continue
		}
		binding := PreludeBinding{Symbol: symbol, Native: native}
		if hasConstant {
			value, err := ast.DecodeYAML(&entry.Constant)
			if err != nil {
				issues = append(issues, fmt.Sprintf("bindings[%d] (%s): %v", idx, symbol, err))
				continue
			}
			binding.Constant = value
		}
		prelude.Bindings = append(prelude.Bindings, binding)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Source: source, Issues: issues}
	}
	return prelude, nil
}
