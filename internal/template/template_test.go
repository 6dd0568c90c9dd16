package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/value"
)

func newFunction(t *testing.T) (*catalog.Catalog, *catalog.GraphFunction) {
	t.Helper()
	cat := catalog.New()
	fn := &catalog.GraphFunction{Name: "Main"}
	id := cat.AddFunction(fn)
	require.NoError(t, cat.SetMain(id))
	return cat, fn
}

func portNames(g *graph.Graph, n *graph.Node) (inputs, outputs []string) {
	for _, id := range n.Inputs {
		in, _ := g.Input(id)
		inputs = append(inputs, in.Name)
	}
	for _, id := range n.Outputs {
		out, _ := g.Output(id)
		outputs = append(outputs, out.Name)
	}
	return inputs, outputs
}

func TestNewRegistersEveryBuiltinKind(t *testing.T) {
	r := New()
	expected := []graph.Kind{
		graph.KindEnter, graph.KindPrint, graph.KindAsk, graph.KindBranch,
		graph.KindAddNumber, graph.KindAddString,
		graph.KindGetVariable, graph.KindSetVariable, graph.KindFunction,
	}
	assert.ElementsMatch(t, expected, r.Kinds())

	for _, kind := range expected {
		tmpl, ok := r.Template(kind)
		require.True(t, ok, "kind %q", kind)
		if tmpl.Shape.Kind == ShapeData {
			assert.NotNil(t, tmpl.EvaluateExpression, "data kind %q needs an expression hook", kind)
			assert.Nil(t, tmpl.CompileStatement, "data kind %q has no statement hook", kind)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() {
		r.Register(&Template{Kind: graph.KindPrint})
	})
}

func TestInstantiate(t *testing.T) {
	r := New()

	t.Run("unknown kind", func(t *testing.T) {
		cat, fn := newFunction(t)
		_, err := r.Instantiate(cat, fn, NodeSpec{Kind: "teleport"})
		assert.ErrorContains(t, err, "unknown node kind")
	})

	t.Run("enter has only an execution output", func(t *testing.T) {
		cat, fn := newFunction(t)
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindEnter})
		require.NoError(t, err)
		ins, outs := portNames(fn.Graph, n)
		assert.Empty(t, ins)
		assert.Equal(t, []string{"exec"}, outs)
	})

	t.Run("print declares execution ports then its text input", func(t *testing.T) {
		cat, fn := newFunction(t)
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindPrint})
		require.NoError(t, err)
		ins, outs := portNames(fn.Graph, n)
		assert.Equal(t, []string{"exec", "text"}, ins)
		assert.Equal(t, []string{"exec"}, outs)
	})

	t.Run("ask exposes the answer output", func(t *testing.T) {
		cat, fn := newFunction(t)
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindAsk})
		require.NoError(t, err)
		_, outs := portNames(fn.Graph, n)
		assert.Equal(t, []string{"exec", "answer"}, outs)
	})

	t.Run("branch has If and Else execution outputs", func(t *testing.T) {
		cat, fn := newFunction(t)
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindBranch})
		require.NoError(t, err)
		ins, outs := portNames(fn.Graph, n)
		assert.Equal(t, []string{"exec", "condition"}, ins)
		assert.Equal(t, []string{"If", "Else"}, outs)

		cond, _ := fn.Graph.Input(n.Inputs[1])
		assert.Equal(t, value.TypeBoolean, cond.Type)
	})

	t.Run("get_variable takes the declared variable's type", func(t *testing.T) {
		cat, fn := newFunction(t)
		fn.Variables = []catalog.Variable{{Name: "count", Default: value.Integer(3)}}
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindGetVariable, Variable: "count"})
		require.NoError(t, err)
		require.Len(t, n.Outputs, 1)
		out, _ := fn.Graph.Output(n.Outputs[0])
		assert.Equal(t, "value", out.Name)
		assert.Equal(t, value.TypeInteger, out.Type)
	})

	t.Run("get_variable with a stale name has no ports", func(t *testing.T) {
		cat, fn := newFunction(t)
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindGetVariable, Variable: "gone"})
		require.NoError(t, err)
		assert.Empty(t, n.Outputs)
	})

	t.Run("set_variable input defaults to the variable's default", func(t *testing.T) {
		cat, fn := newFunction(t)
		fn.Variables = []catalog.Variable{{Name: "name", Default: value.String("bob")}}
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindSetVariable, Variable: "name"})
		require.NoError(t, err)
		ins, _ := portNames(fn.Graph, n)
		assert.Equal(t, []string{"exec", "value"}, ins)
		in, _ := fn.Graph.Input(n.Inputs[1])
		assert.Equal(t, `"bob"`, in.Value.Render())
	})
}

func TestInstantiateCallNode(t *testing.T) {
	r := New()

	t.Run("mirrors the callee signature", func(t *testing.T) {
		cat, fn := newFunction(t)
		calleeID := cat.AddFunction(&catalog.GraphFunction{
			Name:    "greet",
			Inputs:  []catalog.SignatureEntry{{Name: "who", Default: value.String("world")}},
			Outputs: []catalog.SignatureEntry{{Name: "greeting", Default: value.String("")}},
		})

		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindFunction, Function: calleeID})
		require.NoError(t, err)
		ins, outs := portNames(fn.Graph, n)
		assert.Equal(t, []string{"exec", "who"}, ins)
		assert.Equal(t, []string{"exec", "greeting"}, outs)

		who, _ := fn.Graph.Input(n.Inputs[1])
		assert.Equal(t, `"world"`, who.Value.Render(), "signature default becomes the inline constant")
	})

	t.Run("execution signature entries become execution ports", func(t *testing.T) {
		cat, fn := newFunction(t)
		calleeID := cat.AddFunction(&catalog.GraphFunction{
			Name:    "stage",
			Inputs:  []catalog.SignatureEntry{{Name: "go", Default: value.Execution()}},
			Outputs: []catalog.SignatureEntry{{Name: "done", Default: value.Execution()}},
		})

		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindFunction, Function: calleeID})
		require.NoError(t, err)
		in, _ := fn.Graph.Input(n.Inputs[1])
		assert.True(t, in.Type.IsExecution())
		out, _ := fn.Graph.Output(n.Outputs[1])
		assert.True(t, out.Type.IsExecution())
	})

	t.Run("dangling reference keeps bare execution ports", func(t *testing.T) {
		cat, fn := newFunction(t)
		n, err := r.Instantiate(cat, fn, NodeSpec{Kind: graph.KindFunction, Function: 99})
		require.NoError(t, err)
		ins, outs := portNames(fn.Graph, n)
		assert.Equal(t, []string{"exec"}, ins)
		assert.Equal(t, []string{"exec"}, outs)
	})
}
