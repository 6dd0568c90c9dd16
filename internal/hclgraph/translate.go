package hclgraph

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/ctxlog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
	"github.com/vk/flowscript/internal/value"
)

// translate turns decoded function blocks into a populated catalog. It runs
// in two passes: definitions first, so call nodes can resolve any function
// by name regardless of declaration order, then nodes and connections.
func (l *Loader) translate(ctx context.Context, blocks []*functionBlock) (*catalog.Catalog, graph.FunctionID, error) {
	logger := ctxlog.FromContext(ctx)
	cat := catalog.New()

	seen := make(map[string]bool)
	var mainID graph.FunctionID
	for _, block := range blocks {
		if seen[block.Name] {
			return nil, 0, fmt.Errorf("function %q defined more than once", block.Name)
		}
		seen[block.Name] = true

		fn, err := buildDefinition(block)
		if err != nil {
			return nil, 0, err
		}
		id := cat.AddFunction(fn)
		if block.Main {
			if mainID != 0 {
				return nil, 0, fmt.Errorf("more than one function marked main")
			}
			mainID = id
		}
	}
	if mainID == 0 {
		return nil, 0, fmt.Errorf("no function marked main")
	}
	if err := cat.SetMain(mainID); err != nil {
		return nil, 0, err
	}

	for _, block := range blocks {
		_, fn, _ := cat.FunctionByName(block.Name)
		if err := l.populate(cat, fn, block); err != nil {
			return nil, 0, fmt.Errorf("function %q: %w", block.Name, err)
		}
	}

	logger.Debug("Catalog translated.", "functions", len(blocks), "main", mainID)
	return cat, mainID, nil
}

// buildDefinition creates the function shell: name, signature, variables.
func buildDefinition(block *functionBlock) (*catalog.GraphFunction, error) {
	fn := &catalog.GraphFunction{
		Name:      block.Name,
		Graph:     graph.New(),
		Removable: !block.Main,
		Renamable: !block.Main,
	}

	for _, decl := range block.Inputs {
		entry, err := signatureEntry(decl)
		if err != nil {
			return nil, fmt.Errorf("function %q input %q: %w", block.Name, decl.Name, err)
		}
		fn.Inputs = append(fn.Inputs, entry)
	}
	for _, decl := range block.Outputs {
		entry, err := signatureEntry(decl)
		if err != nil {
			return nil, fmt.Errorf("function %q output %q: %w", block.Name, decl.Name, err)
		}
		fn.Outputs = append(fn.Outputs, entry)
	}
	for _, decl := range block.Variables {
		t, err := typeExprToType(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("function %q variable %q: %w", block.Name, decl.Name, err)
		}
		v, err := defaultFor(t, decl.Default)
		if err != nil {
			return nil, fmt.Errorf("function %q variable %q: %w", block.Name, decl.Name, err)
		}
		fn.Variables = append(fn.Variables, catalog.Variable{Name: decl.Name, Default: v, Removable: true})
	}
	return fn, nil
}

func signatureEntry(decl *portDecl) (catalog.SignatureEntry, error) {
	t, err := typeExprToType(decl.Type)
	if err != nil {
		return catalog.SignatureEntry{}, err
	}
	v, err := defaultFor(t, decl.Default)
	if err != nil {
		return catalog.SignatureEntry{}, err
	}
	return catalog.SignatureEntry{Name: decl.Name, Default: v}, nil
}

// populate instantiates a function's nodes, applies inline values, and wires
// connections.
func (l *Loader) populate(cat *catalog.Catalog, fn *catalog.GraphFunction, block *functionBlock) error {
	nodes := make(map[string]*graph.Node)
	for _, nb := range block.Nodes {
		if _, dup := nodes[nb.Name]; dup {
			return fmt.Errorf("node %q defined more than once", nb.Name)
		}
		spec := template.NodeSpec{Kind: graph.Kind(nb.Kind), Variable: nb.Variable}
		if _, ok := l.reg.Template(spec.Kind); !ok {
			return fmt.Errorf("node %q has unknown kind %q", nb.Name, nb.Kind)
		}
		if spec.Kind == graph.KindFunction {
			calleeID, _, ok := cat.FunctionByName(nb.Function)
			if !ok {
				return fmt.Errorf("node %q calls unknown function %q", nb.Name, nb.Function)
			}
			// A self-referential call still loads; the compiler's own
			// recursion policy decides whether it compiles.
			spec.Function = calleeID
		}
		n, err := l.reg.Instantiate(cat, fn, spec)
		if err != nil {
			return fmt.Errorf("node %q: %w", nb.Name, err)
		}
		nodes[nb.Name] = n

		for _, iv := range nb.Inputs {
			if err := applyInlineValue(fn.Graph, n, iv); err != nil {
				return fmt.Errorf("node %q: %w", nb.Name, err)
			}
		}
	}

	for _, cb := range block.Connects {
		if err := connect(fn.Graph, nodes, cb); err != nil {
			return err
		}
	}
	return nil
}

// applyInlineValue overrides the inline constant on one named input port.
func applyInlineValue(g *graph.Graph, n *graph.Node, iv *inlineValueDecl) error {
	in, err := findInput(g, n, iv.Name)
	if err != nil {
		return err
	}
	if in.Type.IsExecution() || in.Kind == graph.ConnectionOnly {
		return fmt.Errorf("input %q takes no inline value", iv.Name)
	}
	cv, diags := iv.Value.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("input %q: %w", iv.Name, diags)
	}
	v, err := value.FromCty(in.Type, cv)
	if err != nil {
		return fmt.Errorf("input %q: %w", iv.Name, err)
	}
	in.Value = v
	return nil
}

// connect resolves both "node.port" references of a connect block and wires
// the edge.
func connect(g *graph.Graph, nodes map[string]*graph.Node, cb *connectBlock) error {
	fromNode, fromPort, err := splitRef(cb.From)
	if err != nil {
		return fmt.Errorf("connect from %q: %w", cb.From, err)
	}
	toNode, toPort, err := splitRef(cb.To)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", cb.To, err)
	}

	src, ok := nodes[fromNode]
	if !ok {
		return fmt.Errorf("connect from %q: unknown node %q", cb.From, fromNode)
	}
	dst, ok := nodes[toNode]
	if !ok {
		return fmt.Errorf("connect to %q: unknown node %q", cb.To, toNode)
	}

	out, err := findOutput(g, src, fromPort)
	if err != nil {
		return fmt.Errorf("connect from %q: %w", cb.From, err)
	}
	in, err := findInput(g, dst, toPort)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", cb.To, err)
	}
	if err := g.Connect(in.ID, out.ID); err != nil {
		return fmt.Errorf("connect %q -> %q: %w", cb.From, cb.To, err)
	}
	return nil
}

func splitRef(ref string) (node, port string, err error) {
	node, port, ok := strings.Cut(ref, ".")
	if !ok || node == "" || port == "" {
		return "", "", fmt.Errorf("expected \"node.port\" reference")
	}
	return node, port, nil
}

func findInput(g *graph.Graph, n *graph.Node, name string) (*graph.InputParam, error) {
	for _, id := range n.Inputs {
		if in, ok := g.Input(id); ok && in.Name == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("no input port %q", name)
}

func findOutput(g *graph.Graph, n *graph.Node, name string) (*graph.OutputParam, error) {
	for _, id := range n.Outputs {
		if out, ok := g.Output(id); ok && out.Name == name {
			return out, nil
		}
	}
	return nil, fmt.Errorf("no output port %q", name)
}
