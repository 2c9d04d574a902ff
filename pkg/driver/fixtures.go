package driver

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/btwooton/shaka-scheme/pkg/ast"
)

// Fixture is an exec fixture: a program of top-level forms and the outcome
// expected from evaluating them in order.
type Fixture struct {
	Path    string
	Name    string
	Program []ast.Node
	Expect  FixtureExpectation
}

// FixtureExpectation lists what a fixture asserts. Result is nil when the
// fixture expects an error; Effects is nil when side effects are not checked.
type FixtureExpectation struct {
	Result  ast.Node
	Error   string
	Effects []ast.Node
}

// LoadFixture parses a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw fixtureFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixture: %s is empty", path)
		}
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	fixture, err := raw.toFixture(path)
	if err != nil {
		return nil, err
	}
	return fixture, nil
}

// CollectFixtures returns every .yml file under root in lexical order.
func CollectFixtures(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), ".yml") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fixture: walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

type fixtureFile struct {
	Name    string            `yaml:"name"`
	Program []yaml.Node       `yaml:"program"`
	Expect  fixtureExpectFile `yaml:"expect"`
}

type fixtureExpectFile struct {
	Result  yaml.Node   `yaml:"result"`
	Error   string      `yaml:"error"`
	Effects []yaml.Node `yaml:"effects"`
}

func (f fixtureFile) toFixture(path string) (*Fixture, error) {
	fixture := &Fixture{
		Path: path,
		Name: strings.TrimSpace(f.Name),
	}
	var issues []string
	if fixture.Name == "" {
		fixture.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(f.Program) == 0 {
		issues = append(issues, "program must contain at least one form")
	}
	for idx := range f.Program {
		form, err := ast.DecodeYAML(&f.Program[idx])
		if err != nil {
			issues = append(issues, fmt.Sprintf("program[%d]: %v", idx, err))
			continue
		}
		fixture.Program = append(fixture.Program, form)
	}

	expect := f.Expect
	fixture.Expect.Error = strings.TrimSpace(expect.Error)
	hasResult := expect.Result.Kind != 0
	switch {
	case hasResult && fixture.Expect.Error != "":
		issues = append(issues, "expect: result and error are mutually exclusive")
	case !hasResult && fixture.Expect.Error == "":
		issues = append(issues, "expect: one of result or error is required")
	case hasResult:
		result, err := ast.DecodeYAML(&expect.Result)
		if err != nil {
			issues = append(issues, fmt.Sprintf("expect.result: %v", err))
		}
		fixture.Expect.Result = result
	}
	if expect.Effects != nil {
		fixture.Expect.Effects = make([]ast.Node, 0, len(expect.Effects))
		for idx := range expect.Effects {
			effect, err := ast.DecodeYAML(&expect.Effects[idx])
			if err != nil {
				issues = append(issues, fmt.Sprintf("expect.effects[%d]: %v", idx, err))
				continue
			}
			fixture.Expect.Effects = append(fixture.Expect.Effects, effect)
		}
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Source: path, Issues: issues}
	}
	return fixture, nil
}
