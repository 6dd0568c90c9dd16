package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
	"github.com/vk/flowscript/internal/value"
)

// fixture builds catalogs by hand for compiler tests, skipping the document
// loader so each test states exactly the graph it compiles.
type fixture struct {
	t      *testing.T
	reg    *template.Registry
	cat    *catalog.Catalog
	main   *catalog.GraphFunction
	mainID graph.FunctionID
	opts   Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := catalog.New()
	main := &catalog.GraphFunction{Name: "Main"}
	mainID := cat.AddFunction(main)
	require.NoError(t, cat.SetMain(mainID))
	return &fixture{
		t:      t,
		reg:    template.New(),
		cat:    cat,
		main:   main,
		mainID: mainID,
	}
}

// function registers an additional callable function definition.
func (f *fixture) function(fn *catalog.GraphFunction) graph.FunctionID {
	f.t.Helper()
	fn.Removable = true
	fn.Renamable = true
	return f.cat.AddFunction(fn)
}

// node instantiates a node in the given function's graph.
func (f *fixture) node(fn *catalog.GraphFunction, spec template.NodeSpec) *graph.Node {
	f.t.Helper()
	n, err := f.reg.Instantiate(f.cat, fn, spec)
	require.NoError(f.t, err)
	return n
}

func (f *fixture) input(fn *catalog.GraphFunction, n *graph.Node, name string) *graph.InputParam {
	f.t.Helper()
	for _, id := range n.Inputs {
		if in, ok := fn.Graph.Input(id); ok && in.Name == name {
			return in
		}
	}
	f.t.Fatalf("node %d has no input %q", n.ID, name)
	return nil
}

func (f *fixture) output(fn *catalog.GraphFunction, n *graph.Node, name string) *graph.OutputParam {
	f.t.Helper()
	for _, id := range n.Outputs {
		if out, ok := fn.Graph.Output(id); ok && out.Name == name {
			return out
		}
	}
	f.t.Fatalf("node %d has no output %q", n.ID, name)
	return nil
}

// wire connects from's named output into to's named input.
func (f *fixture) wire(fn *catalog.GraphFunction, from *graph.Node, outName string, to *graph.Node, inName string) {
	f.t.Helper()
	out := f.output(fn, from, outName)
	in := f.input(fn, to, inName)
	require.NoError(f.t, fn.Graph.Connect(in.ID, out.ID))
}

// chain wires a sequence of control nodes along their plain exec ports.
func (f *fixture) chain(fn *catalog.GraphFunction, nodes ...*graph.Node) {
	f.t.Helper()
	for i := 0; i+1 < len(nodes); i++ {
		f.wire(fn, nodes[i], "exec", nodes[i+1], "exec")
	}
}

// setConst overrides the inline constant on a named input.
func (f *fixture) setConst(fn *catalog.GraphFunction, n *graph.Node, inName string, v value.Value) {
	f.t.Helper()
	f.input(fn, n, inName).Value = v
}

func (f *fixture) compile() (string, error) {
	f.t.Helper()
	return New(f.reg, f.opts).Compile(context.Background(), f.cat, f.mainID)
}

func (f *fixture) mustCompile() string {
	f.t.Helper()
	script, err := f.compile()
	require.NoError(f.t, err)
	return script
}
