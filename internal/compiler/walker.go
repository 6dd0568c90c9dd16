package compiler

import (
	"context"
	"fmt"

	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
)

// walkNode compiles one control node and everything reachable downstream of
// its execution outputs.
//
// Order matters here. Operands are resolved first, in input declaration
// order. Temporaries for the node's own value outputs are registered in the
// cache next, before any branch is compiled, so that every downstream data
// consumer of those outputs resolves to the same identifier instead of
// re-inlining the producing statement. Branches follow, one per execution
// output in declaration order, and only then does the kind's statement hook
// run over the fully resolved text.
func (r *run) walkNode(ctx context.Context, g *graph.Graph, node *graph.Node, cache map[graph.OutputID]string) (string, error) {
	t, ok := r.c.reg.Template(node.Kind)
	if !ok {
		return "", fmt.Errorf("node %d has unknown kind %q", node.ID, node.Kind)
	}
	if t.Shape.Kind == template.ShapeData {
		return "", fmt.Errorf("node %d of data kind %q reached by execution flow", node.ID, node.Kind)
	}

	var operands []string
	for _, inID := range node.Inputs {
		in, ok := g.Input(inID)
		if !ok {
			return "", fmt.Errorf("input %d not found on node %d", inID, node.ID)
		}
		if in.Type.IsExecution() {
			continue
		}
		text, err := r.resolveInput(g, in, cache)
		if err != nil {
			return "", err
		}
		operands = append(operands, text)
	}
	if len(operands) < t.MinOperands {
		return "", &MissingOperandError{Node: node.ID}
	}

	var results []string
	for _, outID := range node.Outputs {
		out, ok := g.Output(outID)
		if !ok {
			return "", fmt.Errorf("output %d not found on node %d", outID, node.ID)
		}
		if out.Type.IsExecution() {
			continue
		}
		name := r.newTemp()
		cache[outID] = name
		results = append(results, name)
	}

	var branches []string
	for _, outID := range node.Outputs {
		out, _ := g.Output(outID)
		if !out.Type.IsExecution() {
			continue
		}
		script := ""
		if inID, ok := g.ExecTarget(outID); ok {
			in, _ := g.Input(inID)
			next, ok := g.Node(in.Node)
			if !ok {
				return "", fmt.Errorf("input %d points at missing node", inID)
			}
			compiled, err := r.walkNode(ctx, g, next, cache)
			if err != nil {
				return "", err
			}
			script = compiled
		}
		branches = append(branches, script)
	}

	var fragment string
	if node.Kind == graph.KindFunction {
		inlined, err := r.inlineCall(ctx, node, operands, results)
		if err != nil {
			return "", err
		}
		fragment = inlined
	} else {
		fragment = t.CompileStatement(template.StatementInput{
			Node:     node,
			Operands: operands,
			Branches: branches,
			Results:  results,
		})
	}

	// The composition rule is a declared property of the kind: embedding
	// kinds consumed every branch inside their own fragment already.
	if t.Compose == template.ComposeEmbed {
		return fragment, nil
	}
	if len(branches) > 0 {
		return joinScript(fragment, branches[0]), nil
	}
	return fragment, nil
}
