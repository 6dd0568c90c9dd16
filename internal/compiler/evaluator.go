package compiler

import (
	"fmt"

	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
)

// resolveInput resolves one data input to expression text. Each top-level
// resolution gets its own visiting set; the output cache is shared across
// the whole compile call.
func (r *run) resolveInput(g *graph.Graph, in *graph.InputParam, cache map[graph.OutputID]string) (string, error) {
	return r.resolve(g, in, cache, make(map[graph.NodeID]bool))
}

// resolve is the memoized, cycle-checked descent over data edges.
//
// An unconnected input renders its inline constant. A connected input
// returns the cached text when its source output was already compiled;
// otherwise the source node is marked as visiting, its own data inputs are
// resolved recursively, and its expression hook runs once. The result is
// stored under every output the node exposes — all of a data node's outputs
// share its single computed result, a known simplification of the document
// model rather than a bug to fix here.
func (r *run) resolve(g *graph.Graph, in *graph.InputParam, cache map[graph.OutputID]string, visiting map[graph.NodeID]bool) (string, error) {
	outID, connected := g.ConnectionOf(in.ID)
	if !connected {
		if in.Kind == graph.ConnectionOnly {
			return "", &MissingOperandError{Node: in.Node, Input: in.ID, Name: in.Name}
		}
		return in.Value.Render(), nil
	}

	if text, ok := cache[outID]; ok {
		return text, nil
	}

	out, ok := g.Output(outID)
	if !ok {
		return "", fmt.Errorf("output %d not found", outID)
	}
	owner, ok := g.Node(out.Node)
	if !ok {
		return "", fmt.Errorf("output %d belongs to missing node", outID)
	}
	if visiting[owner.ID] {
		// Re-entering a node already on the descent path closes a loop.
		// Cycles are never silently broken; name the closing edge.
		return "", &CycleError{Output: outID, Input: in.ID}
	}

	t, ok := r.c.reg.Template(owner.Kind)
	if !ok {
		return "", fmt.Errorf("node %d has unknown kind %q", owner.ID, owner.Kind)
	}
	if t.EvaluateExpression == nil {
		// The output belongs to a control node whose statement has not
		// executed on this path, so no temporary binds it here.
		return "", &MissingOperandError{Node: in.Node, Input: in.ID, Name: in.Name}
	}

	visiting[owner.ID] = true
	var operands []string
	for _, depID := range owner.Inputs {
		dep, ok := g.Input(depID)
		if !ok {
			return "", fmt.Errorf("input %d not found on node %d", depID, owner.ID)
		}
		if dep.Type.IsExecution() {
			continue
		}
		text, err := r.resolve(g, dep, cache, visiting)
		if err != nil {
			return "", err
		}
		operands = append(operands, text)
	}
	if len(operands) < t.MinOperands {
		return "", &MissingOperandError{Node: owner.ID}
	}

	expr := t.EvaluateExpression(template.ExpressionInput{Node: owner, Operands: operands})
	for _, o := range owner.Outputs {
		// Write-once: a temporary registered by the walker keeps priority.
		if _, exists := cache[o]; !exists {
			cache[o] = expr
		}
	}
	delete(visiting, owner.ID)

	return cache[outID], nil
}
