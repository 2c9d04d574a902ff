package interpreter

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/driver"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

func TestExecFixtures(t *testing.T) {
	root := filepath.Join("testdata", "fixtures")
	paths, err := driver.CollectFixtures(root)
	if err != nil {
		t.Fatalf("collect fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no fixtures found under %s", root)
	}
	for _, path := range paths {
		path := path
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("relative path for %s: %v", path, err)
		}
		t.Run(strings.TrimSuffix(filepath.ToSlash(rel), ".yml"), func(t *testing.T) {
			runExecFixture(t, path)
		})
	}
}

func runExecFixture(t *testing.T, path string) {
	t.Helper()

	fixture, err := driver.LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	interp := New()
	var effects []ast.Node
	interp.GlobalEnvironment().SetValue(ast.Sym("record"), ast.Proc(runtime.NewNativeProcedure("record", ast.Exactly(1), func(args []ast.Node) (ast.Node, error) {
		effects = append(effects, args[0])
		return args[0], nil
	})))

	result, err := interp.RunProgram(fixture.Program)
	if fixture.Expect.Error != "" {
		if err == nil {
			t.Fatalf("%s: expected %s error, got result %s", fixture.Name, fixture.Expect.Error, result)
		}
		var rtErr *runtime.Error
		if !errors.As(err, &rtErr) {
			t.Fatalf("%s: expected runtime error, got %v", fixture.Name, err)
		}
		if string(rtErr.Kind) != fixture.Expect.Error {
			t.Fatalf("%s: expected %s error, got %s (%v)", fixture.Name, fixture.Expect.Error, rtErr.Kind, err)
		}
	} else {
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", fixture.Name, err)
		}
		if !ast.Equal(result, fixture.Expect.Result) {
			t.Fatalf("%s: expected %s, got %s", fixture.Name, fixture.Expect.Result, result)
		}
	}
	if fixture.Expect.Effects == nil {
		return
	}
	if !ast.Equal(ast.List(effects...), ast.List(fixture.Expect.Effects...)) {
		t.Fatalf("%s: expected effects %s, got %s", fixture.Name, ast.List(fixture.Expect.Effects...), ast.List(effects...))
	}
}
