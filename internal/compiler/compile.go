package compiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/ctxlog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
)

// Options configures one compiler instance.
type Options struct {
	// AllowRecursiveFunctions permits a call node to re-enter a function
	// that is already being inlined. Off by default; even when on, the
	// inliner caps nesting depth so compilation always terminates.
	AllowRecursiveFunctions bool
}

// maxInlineDepth bounds call inlining when recursion is permitted.
const maxInlineDepth = 32

// Compiler compiles catalogs against one template registry.
type Compiler struct {
	reg  *template.Registry
	opts Options
}

// New creates a compiler.
func New(reg *template.Registry, opts Options) *Compiler {
	return &Compiler{reg: reg, opts: opts}
}

// Compile validates Enter-node placement, emits Main's variable-declaration
// prelude, and walks the execution flow from the Enter node. It returns a
// complete script or the first structural error; never a partial script.
func (c *Compiler) Compile(ctx context.Context, cat *catalog.Catalog, mainID graph.FunctionID) (string, error) {
	logger := ctxlog.FromContext(ctx)

	main, ok := cat.Function(mainID)
	if !ok {
		return "", fmt.Errorf("main function %d not found in catalog", mainID)
	}

	// Scan every function, not just Main, so a misplaced Enter node is
	// reported rather than silently ignored.
	var enter *graph.Node
	var enterIn graph.FunctionID
	total := 0
	for _, id := range cat.Functions() {
		fn, _ := cat.Function(id)
		for _, n := range fn.Graph.NodesOfKind(graph.KindEnter) {
			total++
			enter = n
			enterIn = id
		}
	}
	switch {
	case total == 0:
		return "", ErrMissingEnterNode
	case total > 1:
		return "", ErrMultipleEnterNodes
	case enterIn != mainID:
		return "", ErrEnterInFunction
	}
	logger.Debug("Enter node validated.", "node", enter.ID)

	var parts []string
	for _, v := range main.Variables {
		if v.Default.Type().IsExecution() {
			continue
		}
		parts = append(parts, fmt.Sprintf("(local %s %s)", v.Name, v.Default.Render()))
	}

	r := &run{
		c:      c,
		cat:    cat,
		active: map[graph.FunctionID]int{mainID: 1},
	}
	body, err := r.walkNode(ctx, main.Graph, enter, make(map[graph.OutputID]string))
	if err != nil {
		return "", err
	}
	if body != "" {
		parts = append(parts, body)
	}

	script := strings.Join(parts, " ")
	logger.Debug("Compile finished.", "bytes", len(script), "temporaries", r.tmpCount)
	return script, nil
}

// run is the transient state of one compile call.
type run struct {
	c   *Compiler
	cat *catalog.Catalog

	// tmpCount feeds the temporary-name generator. It is per compile so
	// that compiling an unmodified document twice yields identical text.
	tmpCount int

	// active counts functions currently being inlined, for recursion
	// detection. depth caps total inlining when recursion is allowed.
	active map[graph.FunctionID]int
	depth  int
}

func (r *run) newTemp() string {
	r.tmpCount++
	return fmt.Sprintf("var_%d", r.tmpCount)
}

// joinScript concatenates non-empty fragments with single spaces.
func joinScript(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
