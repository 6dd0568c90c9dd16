package hclgraph

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowscript/internal/catalog"
	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/template"
	"github.com/vk/flowscript/internal/value"
)

func parseBody(t *testing.T, src string) hcl.Body {
	t.Helper()
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "parse: %s", diags)
	return file.Body
}

func load(t *testing.T, src string) (*catalog.Catalog, graph.FunctionID, error) {
	t.Helper()
	loader := NewLoader(template.New())
	return loader.LoadBody(context.Background(), parseBody(t, src))
}

func TestLoadBody(t *testing.T) {
	src := `
function "Main" {
  main = true

  variable "total" {
    type    = integer
    default = 3
  }

  node "start" {
    kind = "enter"
  }

  node "greet" {
    kind = "print"

    input "text" {
      value = "hello"
    }
  }

  connect {
    from = "start.exec"
    to   = "greet.exec"
  }
}
`
	cat, mainID, err := load(t, src)
	require.NoError(t, err)
	require.NotZero(t, mainID)
	assert.Equal(t, mainID, cat.MainID())

	main, ok := cat.Function(mainID)
	require.True(t, ok)
	assert.Equal(t, "Main", main.Name)
	assert.False(t, main.Removable)
	assert.False(t, main.Renamable)

	require.Len(t, main.Variables, 1)
	assert.Equal(t, "total", main.Variables[0].Name)
	assert.Equal(t, "3", main.Variables[0].Default.Render())

	nodes := main.Graph.Nodes()
	require.Len(t, nodes, 2)
	enter, print := nodes[0], nodes[1]
	assert.Equal(t, graph.KindEnter, enter.Kind)
	assert.Equal(t, graph.KindPrint, print.Kind)

	// The inline value landed on the text input and the execution edge is
	// wired.
	var text *graph.InputParam
	for _, id := range print.Inputs {
		if in, _ := main.Graph.Input(id); in.Name == "text" {
			text = in
		}
	}
	require.NotNil(t, text)
	assert.Equal(t, `"hello"`, text.Value.Render())

	out, _ := main.Graph.Output(enter.Outputs[0])
	target, ok := main.Graph.ExecTarget(out.ID)
	require.True(t, ok)
	in, _ := main.Graph.Input(target)
	assert.Equal(t, print.ID, in.Node)
}

func TestLoadBodyFunctionCalls(t *testing.T) {
	src := `
function "Main" {
  main = true

  node "start" {
    kind = "enter"
  }

  node "call" {
    kind     = "function"
    function = "greet"

    input "name" {
      value = "World"
    }
  }

  connect {
    from = "start.exec"
    to   = "call.exec"
  }
}

function "greet" {
  input "name" {
    type    = string
    default = ""
  }

  output "greeting" {
    type = string
  }
}
`
	cat, mainID, err := load(t, src)
	require.NoError(t, err)

	main, _ := cat.Function(mainID)
	call := main.Graph.NodesOfKind(graph.KindFunction)[0]
	calleeID, callee, ok := cat.FunctionByName("greet")
	require.True(t, ok)
	assert.Equal(t, calleeID, call.Function, "call resolves by name regardless of declaration order")
	assert.True(t, callee.Removable)

	// Mirrored signature: exec + name inputs, exec + greeting outputs.
	assert.Len(t, call.Inputs, 2)
	assert.Len(t, call.Outputs, 2)
}

func TestLoadBodyTypeKeywords(t *testing.T) {
	src := `
function "Main" {
  main = true

  variable "s" { type = string }
  variable "i" { type = integer }
  variable "f" { type = float }
  variable "b" { type = boolean }
}
`
	cat, mainID, err := load(t, src)
	require.NoError(t, err)

	main, _ := cat.Function(mainID)
	require.Len(t, main.Variables, 4)
	assert.Equal(t, value.TypeString, main.Variables[0].Default.Type())
	assert.Equal(t, value.TypeInteger, main.Variables[1].Default.Type())
	assert.Equal(t, value.TypeFloat, main.Variables[2].Default.Type())
	assert.Equal(t, value.TypeBoolean, main.Variables[3].Default.Type())
}

func TestLoadBodyErrors(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		errContains string
	}{
		{
			name:        "no main function",
			src:         `function "Main" {}`,
			errContains: "no function marked main",
		},
		{
			name: "two main functions",
			src: `
function "a" { main = true }
function "b" { main = true }
`,
			errContains: "more than one function marked main",
		},
		{
			name: "duplicate function name",
			src: `
function "a" { main = true }
function "a" {}
`,
			errContains: "defined more than once",
		},
		{
			name: "duplicate node name",
			src: `
function "Main" {
  main = true
  node "x" { kind = "enter" }
  node "x" { kind = "print" }
}
`,
			errContains: "defined more than once",
		},
		{
			name: "unknown node kind",
			src: `
function "Main" {
  main = true
  node "x" { kind = "teleport" }
}
`,
			errContains: "unknown kind",
		},
		{
			name: "call to unknown function",
			src: `
function "Main" {
  main = true
  node "x" {
    kind     = "function"
    function = "ghost"
  }
}
`,
			errContains: "unknown function",
		},
		{
			name: "unknown type keyword",
			src: `
function "Main" {
  main = true
  variable "x" { type = decimal }
}
`,
			errContains: "unknown type keyword",
		},
		{
			name: "inline value on an execution input",
			src: `
function "Main" {
  main = true
  node "x" {
    kind = "print"
    input "exec" {
      value = "nope"
    }
  }
}
`,
			errContains: "takes no inline value",
		},
		{
			name: "malformed port reference",
			src: `
function "Main" {
  main = true
  node "a" { kind = "enter" }
  node "b" { kind = "print" }
  connect {
    from = "a"
    to   = "b.exec"
  }
}
`,
			errContains: `expected "node.port"`,
		},
		{
			name: "connect to unknown node",
			src: `
function "Main" {
  main = true
  node "a" { kind = "enter" }
  connect {
    from = "a.exec"
    to   = "ghost.exec"
  }
}
`,
			errContains: "unknown node",
		},
		{
			name: "connect to unknown port",
			src: `
function "Main" {
  main = true
  node "a" { kind = "enter" }
  node "b" { kind = "print" }
  connect {
    from = "a.exec"
    to   = "b.missing"
  }
}
`,
			errContains: "no input port",
		},
		{
			name: "fractional integer constant",
			src: `
function "Main" {
  main = true
  variable "x" {
    type    = integer
    default = 1.5
  }
}
`,
			errContains: "not a whole number",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := load(t, tc.src)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.errContains)
		})
	}
}
