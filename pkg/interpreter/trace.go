package interpreter

import (
	"time"

	"github.com/google/uuid"

	"github.com/btwooton/shaka-scheme/pkg/ast"
)

// Trace records one top-level evaluation: the entry form, its outcome and
// how many procedure applications it performed.
type Trace struct {
	ID           string
	Entry        string
	Result       ast.Node // nil on error
	Error        string   // non-empty on error
	Applications int
	Timestamp    time.Time
}

// Run evaluates node in the global environment and records a trace of it.
// Only the most recent traces are kept; see SetTraceLimit.
func (i *Interpreter) Run(node ast.Node) (ast.Node, error) {
	trace := Trace{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	if node != nil {
		trace.Entry = node.String()
	}
	before := i.applications
	result, err := i.evaluate(node, i.global)
	trace.Applications = i.applications - before
	if err != nil {
		trace.Error = err.Error()
		i.logger.Debug("run failed", "trace", trace.ID, "entry", trace.Entry, "error", err)
	} else {
		trace.Result = result
		i.logger.Debug("run", "trace", trace.ID, "entry", trace.Entry, "applications", trace.Applications)
	}
	i.recordTrace(trace)
	return result, err
}

// Traces returns the retained traces, oldest first.
func (i *Interpreter) Traces() []Trace {
	out := make([]Trace, len(i.traces))
	copy(out, i.traces)
	return out
}

// SetTraceLimit bounds the number of retained traces. Zero disables tracing.
func (i *Interpreter) SetTraceLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	i.traceLimit = limit
	i.trimTraces()
}

func (i *Interpreter) recordTrace(trace Trace) {
	if i.traceLimit == 0 {
		return
	}
	i.traces = append(i.traces, trace)
	i.trimTraces()
}

func (i *Interpreter) trimTraces() {
	if excess := len(i.traces) - i.traceLimit; excess > 0 {
		i.traces = append(i.traces[:0:0], i.traces[excess:]...)
	}
}
