package template

import (
	"fmt"

	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/value"
)

// builtinTemplates declares the closed set of node kinds and their behavior
// in the target notation.
func builtinTemplates() []*Template {
	return []*Template{
		{
			Kind:    graph.KindEnter,
			Shape:   executeShape(execName),
			Compose: ComposeAppend,
			CompileStatement: func(in StatementInput) string {
				// Enter marks the entry point and emits nothing itself.
				return ""
			},
		},
		{
			Kind:        graph.KindPrint,
			Shape:       executedAndExecuteShape(execName, execName),
			Compose:     ComposeAppend,
			MinOperands: 1,
			buildPorts: func(b *portBuilder) {
				b.input("text", value.TypeString, value.String(""))
			},
			CompileStatement: func(in StatementInput) string {
				return fmt.Sprintf("(io.write %s)", in.Operands[0])
			},
		},
		{
			Kind:        graph.KindAsk,
			Shape:       executedAndExecuteShape(execName, execName),
			Compose:     ComposeAppend,
			MinOperands: 1,
			buildPorts: func(b *portBuilder) {
				b.input("prompt", value.TypeString, value.String(""))
				b.output("answer", value.TypeString)
			},
			CompileStatement: func(in StatementInput) string {
				return fmt.Sprintf("(io.write %s) (local %s (io.read))", in.Operands[0], in.Results[0])
			},
		},
		{
			Kind:        graph.KindBranch,
			Shape:       executedAndExecuteShape(execName, "If", "Else"),
			Compose:     ComposeEmbed,
			MinOperands: 1,
			buildPorts: func(b *portBuilder) {
				b.input("condition", value.TypeBoolean, value.Bool(false))
			},
			CompileStatement: func(in StatementInput) string {
				return fmt.Sprintf("(if %s (do %s) (do %s))", in.Operands[0], in.Branches[0], in.Branches[1])
			},
		},
		{
			Kind:        graph.KindAddNumber,
			Shape:       dataShape(),
			MinOperands: 2,
			buildPorts: func(b *portBuilder) {
				b.input("a", value.TypeInteger, value.Integer(0))
				b.input("b", value.TypeInteger, value.Integer(0))
				b.output("sum", value.TypeInteger)
			},
			EvaluateExpression: func(in ExpressionInput) string {
				return fmt.Sprintf("(+ %s %s)", in.Operands[0], in.Operands[1])
			},
		},
		{
			Kind:        graph.KindAddString,
			Shape:       dataShape(),
			MinOperands: 2,
			buildPorts: func(b *portBuilder) {
				b.input("a", value.TypeString, value.String(""))
				b.input("b", value.TypeString, value.String(""))
				b.output("joined", value.TypeString)
			},
			EvaluateExpression: func(in ExpressionInput) string {
				return fmt.Sprintf("(.. %s %s)", in.Operands[0], in.Operands[1])
			},
		},
		{
			Kind:  graph.KindGetVariable,
			Shape: dataShape(),
			buildPorts: func(b *portBuilder) {
				// The output takes the declared variable's type. A stale
				// variable name leaves the node without ports.
				v, ok := b.variable()
				if !ok {
					return
				}
				b.output("value", v.Default.Type())
			},
			EvaluateExpression: func(in ExpressionInput) string {
				return in.Node.Variable
			},
		},
		{
			Kind:        graph.KindSetVariable,
			Shape:       executedAndExecuteShape(execName, execName),
			Compose:     ComposeAppend,
			MinOperands: 1,
			buildPorts: func(b *portBuilder) {
				v, ok := b.variable()
				if !ok {
					return
				}
				b.input("value", v.Default.Type(), v.Default)
			},
			CompileStatement: func(in StatementInput) string {
				return fmt.Sprintf("(set %s %s)", in.Node.Variable, in.Operands[0])
			},
		},
		{
			Kind:    graph.KindFunction,
			Shape:   executedAndExecuteShape(execName, execName),
			Compose: ComposeAppend,
			// The compiler owns this kind's statement: the callee body is
			// inlined by the execution-flow walker, which a pure hook is
			// not allowed to do.
			buildPorts: func(b *portBuilder) {
				b.mirrorSignature()
			},
		},
	}
}
