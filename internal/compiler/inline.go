package compiler

import (
	"context"
	"fmt"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
)

// inlineCall produces the statement text of a call node by compiling the
// callee's body in place: the callee's local variable prelude, one binding
// per declared input, the body walked from the callee's entry node, and one
// binding handing each declared output back to the caller's pre-registered
// temporary.
//
// The recursion check runs here even though the editor should have prevented
// a recursive selection; a stale document must fail loudly, not loop.
func (r *run) inlineCall(ctx context.Context, node *graph.Node, operands, results []string) (string, error) {
	if node.Function == 0 {
		return "", &UnknownFunctionError{Node: node.ID}
	}
	callee, ok := r.cat.Function(node.Function)
	if !ok {
		return "", &UnknownFunctionError{Node: node.ID, Function: node.Function}
	}
	if r.active[node.Function] > 0 && !r.c.opts.AllowRecursiveFunctions {
		return "", &RecursionError{Function: node.Function, Name: callee.Name}
	}
	if r.depth >= maxInlineDepth {
		return "", fmt.Errorf("call to %q exceeds the inlining depth limit of %d", callee.Name, maxInlineDepth)
	}

	var parts []string
	for _, v := range callee.Variables {
		if v.Default.Type().IsExecution() {
			continue
		}
		parts = append(parts, fmt.Sprintf("(local %s %s)", v.Name, v.Default.Render()))
	}

	oi := 0
	for _, in := range callee.Inputs {
		if in.Type().IsExecution() {
			continue
		}
		if oi >= len(operands) {
			// The node's ports were mirrored before the signature grew.
			return "", &MissingOperandError{Node: node.ID, Name: in.Name}
		}
		parts = append(parts, fmt.Sprintf("(local %s %s)", in.Name, operands[oi]))
		oi++
	}

	// Declared outputs are locals the body assigns. Declaring them up front
	// keeps the hand-back bindings valid even when a path never sets one.
	for _, out := range callee.Outputs {
		if out.Type().IsExecution() {
			continue
		}
		parts = append(parts, fmt.Sprintf("(local %s %s)", out.Name, out.Default.Render()))
	}

	if entry := r.findEntry(callee); entry != nil {
		r.active[node.Function]++
		r.depth++
		body, err := r.walkNode(ctx, callee.Graph, entry, make(map[graph.OutputID]string))
		r.depth--
		r.active[node.Function]--
		if err != nil {
			return "", err
		}
		if body != "" {
			parts = append(parts, body)
		}
	}

	ri := 0
	for _, out := range callee.Outputs {
		if out.Type().IsExecution() {
			continue
		}
		if ri >= len(results) {
			break
		}
		parts = append(parts, fmt.Sprintf("(local %s %s)", results[ri], out.Name))
		ri++
	}

	return joinScript(parts...), nil
}

// findEntry picks the callee's entry: the first control node, in insertion
// order, whose execution input has nothing wired in. Callee graphs carry no
// Enter node, so an unconnected execution input is what marks a root. A
// callee without one compiles to an empty body.
func (r *run) findEntry(fn *catalog.GraphFunction) *graph.Node {
	for _, n := range fn.Graph.Nodes() {
		t, ok := r.c.reg.Template(n.Kind)
		if !ok || t.Shape.Kind != template.ShapeExecutedAndExecute && t.Shape.Kind != template.ShapeExecuted {
			continue
		}
		for _, inID := range n.Inputs {
			in, ok := fn.Graph.Input(inID)
			if !ok || !in.Type.IsExecution() {
				continue
			}
			if _, wired := fn.Graph.ConnectionOf(inID); !wired {
				return n
			}
			break
		}
	}
	return nil
}
