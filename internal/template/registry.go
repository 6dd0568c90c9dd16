package template

import (
	"fmt"

	"github.com/vk/flowscript/internal/graph"
)

// StatementInput carries the already-resolved text a control kind needs to
// emit its statement. Operands follow input-port declaration order, Branches
// follow execution-output declaration order, and Results holds the
// pre-registered temporary identifier for each non-execution output.
type StatementInput struct {
	Node     *graph.Node
	Operands []string
	Branches []string
	Results  []string
}

// ExpressionInput carries the already-resolved operand text a data kind
// needs to emit its expression.
type ExpressionInput struct {
	Node     *graph.Node
	Operands []string
}

// Template is the static metadata and behavior of one node kind.
type Template struct {
	Kind    graph.Kind
	Shape   PortShape
	Compose Composition

	// MinOperands is the number of resolved operands the hooks index into.
	// The compiler verifies it before invoking either hook.
	MinOperands int

	// CompileStatement emits the statement fragment for control kinds. It
	// is nil for data kinds, and nil for the function kind, whose
	// statement is produced by the compiler inlining the callee.
	CompileStatement func(StatementInput) string

	// EvaluateExpression emits the expression text for data kinds. Nil
	// for control kinds.
	EvaluateExpression func(ExpressionInput) string

	buildPorts func(b *portBuilder)
}

// Registry maps each node kind to its template.
type Registry struct {
	templates map[graph.Kind]*Template
	order     []graph.Kind
}

// New creates a registry populated with every built-in kind.
func New() *Registry {
	r := &Registry{templates: make(map[graph.Kind]*Template)}
	for _, t := range builtinTemplates() {
		r.Register(t)
	}
	return r
}

// Register adds a template. Registering the same kind twice is a programmer
// error.
func (r *Registry) Register(t *Template) {
	if _, exists := r.templates[t.Kind]; exists {
		panic(fmt.Sprintf("node template %q already registered", t.Kind))
	}
	r.templates[t.Kind] = t
	r.order = append(r.order, t.Kind)
}

// Template looks up the template for a kind.
func (r *Registry) Template(kind graph.Kind) (*Template, bool) {
	t, ok := r.templates[kind]
	return t, ok
}

// Kinds returns every registered kind in registration order.
func (r *Registry) Kinds() []graph.Kind {
	return append([]graph.Kind(nil), r.order...)
}
