package template

// ShapeKind classifies a node kind by its execution ports.
type ShapeKind int

const (
	// ShapeData nodes have no execution ports; they are pure expressions.
	ShapeData ShapeKind = iota
	// ShapeExecute nodes only start control flow (Enter).
	ShapeExecute
	// ShapeExecuted nodes only terminate control flow.
	ShapeExecuted
	// ShapeExecutedAndExecute nodes have one execution input and one or
	// more named execution outputs.
	ShapeExecutedAndExecute
)

// Composition declares how the walker combines a node's statement with the
// scripts compiled from its execution outputs. The rule is a fixed property
// of the kind, never inferred from port counts.
type Composition int

const (
	// ComposeAppend: the node's fragment is followed by the script of its
	// first execution output.
	ComposeAppend Composition = iota
	// ComposeEmbed: the statement hook receives every branch script and
	// embeds them itself; the walker appends nothing.
	ComposeEmbed
)

// PortShape is the execution-port layout of a kind. Data ports are declared
// separately per kind.
type PortShape struct {
	Kind     ShapeKind
	ExecIn   string
	ExecOuts []string
}

// execName is the conventional name of unlabeled execution ports.
const execName = "exec"

func dataShape() PortShape {
	return PortShape{Kind: ShapeData}
}

func executeShape(out string) PortShape {
	return PortShape{Kind: ShapeExecute, ExecOuts: []string{out}}
}

func executedAndExecuteShape(in string, outs ...string) PortShape {
	return PortShape{Kind: ShapeExecutedAndExecute, ExecIn: in, ExecOuts: outs}
}
