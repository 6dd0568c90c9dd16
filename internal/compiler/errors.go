package compiler

import (
	"errors"
	"fmt"

	"github.com/vk/flowscript/internal/graph"
)

// Enter-placement errors, fully checked before any generation begins.
var (
	ErrMissingEnterNode   = errors.New("no Enter node found in any function")
	ErrMultipleEnterNodes = errors.New("more than one Enter node found")
	ErrEnterInFunction    = errors.New("Enter node found outside the Main function")
)

// CycleError reports a data cycle, naming the edge that closed the loop.
type CycleError struct {
	Output graph.OutputID
	Input  graph.InputID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("data cycle detected: output %d feeds back into input %d", e.Output, e.Input)
}

// RecursionError reports a call re-entering a function while recursive
// functions are disabled.
type RecursionError struct {
	Function graph.FunctionID
	Name     string
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursive call to function %q is disabled", e.Name)
}

// UnknownFunctionError reports a call node whose function reference is
// unassigned or points at a deleted function.
type UnknownFunctionError struct {
	Node     graph.NodeID
	Function graph.FunctionID
}

func (e *UnknownFunctionError) Error() string {
	if e.Function == 0 {
		return fmt.Sprintf("call node %d has no function assigned", e.Node)
	}
	return fmt.Sprintf("call node %d references unknown function %d", e.Node, e.Function)
}

// MissingOperandError reports an operand that could not be resolved: a
// connection-only input with nothing wired in, or a node with fewer ports
// than its kind requires.
type MissingOperandError struct {
	Node  graph.NodeID
	Input graph.InputID
	Name  string
}

func (e *MissingOperandError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("node %d is missing a required operand", e.Node)
	}
	return fmt.Sprintf("node %d is missing required operand %q", e.Node, e.Name)
}
