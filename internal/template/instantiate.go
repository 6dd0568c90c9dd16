package template

import (
	"fmt"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/value"
)

// NodeSpec describes a node to instantiate: its kind plus the kind-specific
// parameters.
type NodeSpec struct {
	Kind     graph.Kind
	Function graph.FunctionID
	Variable string
}

// Instantiate adds a node of the given kind to a function's graph, declaring
// its execution ports from the kind's shape and its data ports from the
// kind's template. Call nodes mirror the referenced function's signature;
// a dangling reference leaves the node with its bare execution ports so that
// compilation can reject it explicitly later.
func (r *Registry) Instantiate(cat *catalog.Catalog, owner *catalog.GraphFunction, spec NodeSpec) (*graph.Node, error) {
	t, ok := r.templates[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", spec.Kind)
	}

	g := owner.Graph
	n := g.AddNode(spec.Kind)
	n.Function = spec.Function
	n.Variable = spec.Variable

	b := &portBuilder{g: g, node: n, cat: cat, owner: owner}

	switch t.Shape.Kind {
	case ShapeExecute:
		b.execOutput(t.Shape.ExecOuts[0])
	case ShapeExecuted:
		b.execInput(t.Shape.ExecIn)
	case ShapeExecutedAndExecute:
		b.execInput(t.Shape.ExecIn)
		for _, name := range t.Shape.ExecOuts {
			b.execOutput(name)
		}
	}

	if t.buildPorts != nil {
		t.buildPorts(b)
	}
	if b.err != nil {
		return nil, b.err
	}
	return n, nil
}

// portBuilder accumulates ports on a freshly added node, deferring the first
// arena error until instantiation finishes.
type portBuilder struct {
	g     *graph.Graph
	node  *graph.Node
	cat   *catalog.Catalog
	owner *catalog.GraphFunction
	err   error
}

func (b *portBuilder) input(name string, t value.Type, fallback value.Value) {
	b.addInput(name, t, fallback, graph.ConnectionOrConstant)
}

func (b *portBuilder) execInput(name string) {
	b.addInput(name, value.TypeExecution, value.Execution(), graph.ConnectionOnly)
}

func (b *portBuilder) addInput(name string, t value.Type, fallback value.Value, kind graph.ConnKind) {
	if b.err != nil {
		return
	}
	if _, err := b.g.AddInput(b.node.ID, name, t, fallback, kind); err != nil {
		b.err = err
	}
}

func (b *portBuilder) output(name string, t value.Type) {
	if b.err != nil {
		return
	}
	if _, err := b.g.AddOutput(b.node.ID, name, t); err != nil {
		b.err = err
	}
}

func (b *portBuilder) execOutput(name string) {
	b.output(name, value.TypeExecution)
}

// variable resolves the node's variable parameter against the owning
// function's declarations.
func (b *portBuilder) variable() (catalog.Variable, bool) {
	return b.owner.Variable(b.node.Variable)
}

// mirrorSignature derives a call node's data ports from the referenced
// function's declared signature, in declaration order. Execution-typed
// signature entries become additional execution ports.
func (b *portBuilder) mirrorSignature() {
	callee, ok := b.cat.Function(b.node.Function)
	if !ok {
		return
	}
	for _, in := range callee.Inputs {
		if in.Type().IsExecution() {
			b.execInput(in.Name)
			continue
		}
		b.input(in.Name, in.Type(), in.Default)
	}
	for _, out := range callee.Outputs {
		if out.Type().IsExecution() {
			b.execOutput(out.Name)
			continue
		}
		b.output(out.Name, out.Type())
	}
}
