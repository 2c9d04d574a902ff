package interpreter

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/driver"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

//go:embed prelude.yml
var defaultPreludeSource []byte

var (
	defaultPreludeOnce sync.Once
	defaultPrelude     *driver.Prelude
	defaultPreludeErr  error
)

// DefaultPrelude returns the built-in prelude. The returned value is shared
// and must not be modified.
func DefaultPrelude() *driver.Prelude {
	defaultPreludeOnce.Do(func() {
		defaultPrelude, defaultPreludeErr = driver.ParsePrelude(defaultPreludeSource, "prelude.yml")
	})
	if defaultPreludeErr != nil {
		panic(fmt.Sprintf("interpreter: embedded prelude: %v", defaultPreludeErr))
	}
	return defaultPrelude
}

// NativeNames lists the built-in procedure names a prelude may reference.
func NativeNames() []string {
	registry := builtinRegistry()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstallPrelude binds every prelude entry in env. Each binding gets a fresh
// procedure value, so environments never share mutable state.
func InstallPrelude(env *runtime.Environment, prelude *driver.Prelude) error {
	if env == nil {
		return fmt.Errorf("prelude: nil environment")
	}
	registry := builtinRegistry()
	for _, binding := range prelude.Bindings {
		sym := ast.Sym(binding.Symbol)
		if binding.Constant != nil {
			env.SetValue(sym, binding.Constant)
			continue
		}
		proc, ok := registry[binding.Native]
		if !ok {
			return fmt.Errorf("prelude %s: unknown native %q for symbol %s", prelude.Name, binding.Native, binding.Symbol)
		}
		env.SetValue(sym, ast.Proc(proc))
	}
	return nil
}

func builtinRegistry() map[string]ast.Procedure {
	registry := make(map[string]ast.Procedure)
	for _, proc := range nativeProcedures() {
		registry[proc.Name()] = proc
	}
	for _, proc := range primitiveProcedures() {
		registry[proc.Name()] = proc
	}
	return registry
}
