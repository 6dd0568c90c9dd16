package graph

import "github.com/vk/flowscript/internal/value"

// NodeID is an opaque handle to a node record. Handles are unique within one
// graph and are never reused while the record lives. The zero value is
// invalid.
type NodeID int32

// InputID is an opaque handle to an input port record.
type InputID int32

// OutputID is an opaque handle to an output port record.
type OutputID int32

// FunctionID identifies a function in the catalog. It lives here, rather
// than in the catalog package, because call nodes carry it as a parameter.
// The zero value means "no function assigned".
type FunctionID int32

// Kind names a node template. The set is closed; the template registry is
// checked to cover every kind at construction time.
type Kind string

const (
	KindEnter       Kind = "enter"
	KindPrint       Kind = "print"
	KindAsk         Kind = "ask"
	KindBranch      Kind = "branch"
	KindAddNumber   Kind = "add_number"
	KindAddString   Kind = "add_string"
	KindGetVariable Kind = "get_variable"
	KindSetVariable Kind = "set_variable"
	KindFunction    Kind = "function"
)

// ConnKind governs whether an input port's inline constant is meaningful.
type ConnKind int

const (
	// ConnectionOrConstant inputs fall back to their inline constant when
	// nothing is wired in.
	ConnectionOrConstant ConnKind = iota
	// ConnectionOnly inputs have no meaningful inline constant; execution
	// inputs are always ConnectionOnly.
	ConnectionOnly
	// ConstantOnly inputs never accept a connection.
	ConstantOnly
)

// Node is one vertex of the document. Kind-specific parameters live directly
// on the record: Function for call nodes, Variable for variable access nodes.
// Port id lists are ordered; the compiler walks them in declaration order.
type Node struct {
	ID       NodeID
	Kind     Kind
	Function FunctionID
	Variable string
	Inputs   []InputID
	Outputs  []OutputID
}

// InputParam is an input port: its declared type, the inline fallback
// constant, and the connection kind governing whether that constant counts.
type InputParam struct {
	ID    InputID
	Node  NodeID
	Name  string
	Type  value.Type
	Value value.Value
	Kind  ConnKind
}

// OutputParam is an output port.
type OutputParam struct {
	ID   OutputID
	Node NodeID
	Name string
	Type value.Type
}
