// Package template is the registry of node kinds. Each kind declares its
// execution-port shape, its composition rule, and up to two behavior hooks:
// CompileStatement for control kinds and EvaluateExpression for data kinds.
//
// The hooks are pure text functions. They receive operand and branch text
// that the compiler has already resolved and never traverse the graph
// themselves; all ordering, memoization, and cycle concerns stay in the
// compiler.
//
// The registry also instantiates nodes: ordinary kinds have static port
// lists, while call nodes and variable access nodes derive their ports from
// the referenced function signature or variable declaration at build time.
package template
