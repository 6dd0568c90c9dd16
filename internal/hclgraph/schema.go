package hclgraph

import "github.com/hashicorp/hcl/v2"

// documentSchema is the top level of one document file: any number of
// function definitions.
type documentSchema struct {
	Functions []*functionBlock `hcl:"function,block"`
}

// functionBlock is one `function` block. Exactly one function in a document
// must set main = true.
type functionBlock struct {
	Name      string          `hcl:"name,label"`
	Main      bool            `hcl:"main,optional"`
	Inputs    []*portDecl     `hcl:"input,block"`
	Outputs   []*portDecl     `hcl:"output,block"`
	Variables []*variableDecl `hcl:"variable,block"`
	Nodes     []*nodeBlock    `hcl:"node,block"`
	Connects  []*connectBlock `hcl:"connect,block"`
}

// portDecl declares one entry of a function signature. Type keywords are
// bare identifiers (string, integer, float, boolean, execution); default is
// an optional literal.
type portDecl struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type"`
	Default hcl.Expression `hcl:"default,optional"`
}

// variableDecl declares one function-local variable.
type variableDecl struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type"`
	Default hcl.Expression `hcl:"default,optional"`
}

// nodeBlock instantiates one node. `function` names the callee for call
// nodes; `variable` names the accessed local for variable nodes. Nested
// input blocks override inline constants on unconnected inputs.
type nodeBlock struct {
	Name     string             `hcl:"name,label"`
	Kind     string             `hcl:"kind"`
	Function string             `hcl:"function,optional"`
	Variable string             `hcl:"variable,optional"`
	Inputs   []*inlineValueDecl `hcl:"input,block"`
}

// inlineValueDecl sets the inline constant of one named input port.
type inlineValueDecl struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value"`
}

// connectBlock wires an output port into an input port. Both ends use
// "node.port" references.
type connectBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}
