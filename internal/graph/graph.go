package graph

import (
	"fmt"
	"slices"

	"github.com/vk/flowscript/internal/value"
)

// Graph is the arena of node and port records for one function body.
type Graph struct {
	nodes   map[NodeID]*Node
	inputs  map[InputID]*InputParam
	outputs map[OutputID]*OutputParam

	// order preserves node insertion order so traversals and error
	// messages are deterministic.
	order []NodeID

	// conns is the forward index: each input is fed by at most one output.
	// rev is the derived reverse index, kept sorted per output.
	conns map[InputID]OutputID
	rev   map[OutputID][]InputID

	nextNode   NodeID
	nextInput  InputID
	nextOutput OutputID
}

// New creates an empty graph document.
func New() *Graph {
	return &Graph{
		nodes:   make(map[NodeID]*Node),
		inputs:  make(map[InputID]*InputParam),
		outputs: make(map[OutputID]*OutputParam),
		conns:   make(map[InputID]OutputID),
		rev:     make(map[OutputID][]InputID),
	}
}

// AddNode allocates a node record with no ports. Kind-specific parameters
// (Function, Variable) are set on the returned record before ports are added.
func (g *Graph) AddNode(kind Kind) *Node {
	g.nextNode++
	n := &Node{ID: g.nextNode, Kind: kind}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return n
}

// AddInput appends an input port to a node, in declaration order.
func (g *Graph) AddInput(node NodeID, name string, t value.Type, fallback value.Value, kind ConnKind) (InputID, error) {
	n, ok := g.nodes[node]
	if !ok {
		return 0, fmt.Errorf("node %d not found", node)
	}
	g.nextInput++
	in := &InputParam{ID: g.nextInput, Node: node, Name: name, Type: t, Value: fallback, Kind: kind}
	g.inputs[in.ID] = in
	n.Inputs = append(n.Inputs, in.ID)
	return in.ID, nil
}

// AddOutput appends an output port to a node, in declaration order.
func (g *Graph) AddOutput(node NodeID, name string, t value.Type) (OutputID, error) {
	n, ok := g.nodes[node]
	if !ok {
		return 0, fmt.Errorf("node %d not found", node)
	}
	g.nextOutput++
	out := &OutputParam{ID: g.nextOutput, Node: node, Name: name, Type: t}
	g.outputs[out.ID] = out
	n.Outputs = append(n.Outputs, out.ID)
	return out.ID, nil
}

// RemoveNode deletes a node, its ports, and every connection touching them.
func (g *Graph) RemoveNode(id NodeID) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, in := range n.Inputs {
		g.Disconnect(in)
		delete(g.inputs, in)
	}
	for _, out := range n.Outputs {
		for _, in := range slices.Clone(g.rev[out]) {
			g.Disconnect(in)
		}
		delete(g.outputs, out)
	}
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(o NodeID) bool { return o == id })
}

// Connect wires an output into an input. The port types must match. A new
// connection silently supersedes the input's previous source, and for
// execution outputs it also supersedes the output's previous target.
func (g *Graph) Connect(in InputID, out OutputID) error {
	ip, ok := g.inputs[in]
	if !ok {
		return fmt.Errorf("input %d not found", in)
	}
	op, ok := g.outputs[out]
	if !ok {
		return fmt.Errorf("output %d not found", out)
	}
	if ip.Kind == ConstantOnly {
		return fmt.Errorf("input %q accepts only a constant", ip.Name)
	}
	if ip.Type != op.Type {
		return fmt.Errorf("cannot connect %s output %q to %s input %q", op.Type, op.Name, ip.Type, ip.Name)
	}
	if ip.Node == op.Node {
		return fmt.Errorf("cannot connect node %d to itself", ip.Node)
	}

	g.Disconnect(in)
	if op.Type.IsExecution() {
		for _, prev := range slices.Clone(g.rev[out]) {
			g.Disconnect(prev)
		}
	}

	g.conns[in] = out
	g.rev[out] = append(g.rev[out], in)
	slices.Sort(g.rev[out])
	return nil
}

// Disconnect removes the connection feeding an input, if any.
func (g *Graph) Disconnect(in InputID) {
	out, ok := g.conns[in]
	if !ok {
		return
	}
	delete(g.conns, in)
	g.rev[out] = slices.DeleteFunc(g.rev[out], func(i InputID) bool { return i == in })
	if len(g.rev[out]) == 0 {
		delete(g.rev, out)
	}
}

// Node looks up a node record by handle.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Input looks up an input port record by handle.
func (g *Graph) Input(id InputID) (*InputParam, bool) {
	in, ok := g.inputs[id]
	return in, ok
}

// Output looks up an output port record by handle.
func (g *Graph) Output(id OutputID) (*OutputParam, bool) {
	out, ok := g.outputs[id]
	return out, ok
}

// ConnectionOf returns the output feeding an input, if one is wired.
func (g *Graph) ConnectionOf(in InputID) (OutputID, bool) {
	out, ok := g.conns[in]
	return out, ok
}

// ConsumersOf returns every input fed by an output, in handle order.
func (g *Graph) ConsumersOf(out OutputID) []InputID {
	return slices.Clone(g.rev[out])
}

// ExecTarget returns the single input an execution output feeds, if any.
func (g *Graph) ExecTarget(out OutputID) (InputID, bool) {
	targets := g.rev[out]
	if len(targets) == 0 {
		return 0, false
	}
	return targets[0], true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	ns := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		ns = append(ns, g.nodes[id])
	}
	return ns
}

// NodesOfKind returns all nodes of one kind, in insertion order.
func (g *Graph) NodesOfKind(kind Kind) []*Node {
	var ns []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.Kind == kind {
			ns = append(ns, n)
		}
	}
	return ns
}
