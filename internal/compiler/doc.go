// Package compiler turns a function catalog into executable script text.
//
// Two traversals cooperate. The execution-flow walker follows execution
// edges from the Enter node, emitting one statement per control node and
// descending into branches. The data expression evaluator resolves each
// data operand to expression text, memoizing results in a per-compile
// output cache and failing loudly on cycles.
//
// A compile call is synchronous and pure over a snapshot of the document:
// it mutates only its own output cache, visiting sets, and temporary-name
// counter, all discarded when the call returns. Callers must not mutate the
// catalog while a compile is in flight. The result is all-or-nothing: a
// complete script or the first structural error, never a partial script.
package compiler
