package interpreter

import (
	"fmt"
	"log/slog"

	"github.com/btwooton/shaka-scheme/pkg/ast"
	"github.com/btwooton/shaka-scheme/pkg/driver"
	"github.com/btwooton/shaka-scheme/pkg/runtime"
)

const defaultTraceLimit = 1000

// Interpreter owns the global environment and the bookkeeping used for
// diagnostics. Evaluation is single-threaded; an Interpreter must not be
// shared between goroutines.
type Interpreter struct {
	global       *runtime.Environment
	logger       *slog.Logger
	callStack    []string
	applications int
	traces       []Trace
	traceLimit   int
}

// New creates an interpreter whose global environment holds the default prelude.
func New() *Interpreter {
	i, err := NewWithPrelude(DefaultPrelude())
	if err != nil {
		panic(fmt.Sprintf("interpreter: default prelude: %v", err))
	}
	return i
}

// NewWithPrelude creates an interpreter and installs prelude into its global
// environment. A nil prelude leaves the global environment empty.
func NewWithPrelude(prelude *driver.Prelude) (*Interpreter, error) {
	i := &Interpreter{
		global:     runtime.NewEnvironment(nil),
		logger:     slog.New(slog.DiscardHandler),
		traceLimit: defaultTraceLimit,
	}
	if prelude != nil {
		if err := InstallPrelude(i.global, prelude); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// GlobalEnvironment returns the root environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// SetLogger routes debug output to logger. A nil logger discards it.
func (i *Interpreter) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	i.logger = logger
}

// Evaluate evaluates node in env (the global environment when env is nil).
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) (ast.Node, error) {
	if env == nil {
		env = i.global
	}
	return i.evaluate(node, env)
}

// RunProgram evaluates top-level forms in order in the global environment and
// returns the value of the last one. It stops at the first error.
func (i *Interpreter) RunProgram(forms []ast.Node) (ast.Node, error) {
	var result ast.Node = ast.Unspecific
	for idx, form := range forms {
		value, err := i.Run(form)
		if err != nil {
			return nil, fmt.Errorf("form %d: %w", idx, err)
		}
		result = value
	}
	return result, nil
}

func (i *Interpreter) pushCallFrame(name string) {
	i.callStack = append(i.callStack, name)
}

func (i *Interpreter) popCallFrame() {
	if len(i.callStack) == 0 {
		return
	}
	i.callStack = i.callStack[:len(i.callStack)-1]
}

func (i *Interpreter) snapshotCallStack() []string {
	if len(i.callStack) == 0 {
		return nil
	}
	out := make([]string, len(i.callStack))
	copy(out, i.callStack)
	return out
}
