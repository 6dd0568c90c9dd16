package catalog

import (
	"fmt"
	"slices"

	"github.com/vk/flowscript/internal/graph"
	"github.com/vk/flowscript/internal/value"
)

// SignatureEntry is one declared input or output of a function. The entry's
// type is the type of its default value; execution-typed entries declare
// control-flow ports on call nodes.
type SignatureEntry struct {
	Name    string
	Default value.Value
}

// Type returns the declared type of the entry.
func (e SignatureEntry) Type() value.Type {
	return e.Default.Type()
}

// Variable is a local declaration inside a function. Its default renders
// into the declaration prelude when the function is compiled.
type Variable struct {
	Name      string
	Default   value.Value
	Removable bool
}

// GraphFunction is one named sub-graph with its declared signature.
type GraphFunction struct {
	Name      string
	Graph     *graph.Graph
	Inputs    []SignatureEntry
	Outputs   []SignatureEntry
	Variables []Variable

	// Removable and Renamable gate editor operations; Main carries both
	// as false.
	Removable bool
	Renamable bool
}

// Variable looks up a local declaration by name. Signature entries resolve
// too: inputs are bound as locals when a call is inlined, and outputs are
// locals the body assigns before they are handed back to the caller.
func (f *GraphFunction) Variable(name string) (Variable, bool) {
	for _, v := range f.Variables {
		if v.Name == name {
			return v, true
		}
	}
	for _, in := range f.Inputs {
		if in.Name == name {
			return Variable{Name: in.Name, Default: in.Default}, true
		}
	}
	for _, out := range f.Outputs {
		if out.Name == name {
			return Variable{Name: out.Name, Default: out.Default}, true
		}
	}
	return Variable{}, false
}

// Catalog maps function ids to definitions and designates Main.
type Catalog struct {
	funcs  map[graph.FunctionID]*GraphFunction
	order  []graph.FunctionID
	mainID graph.FunctionID
	next   graph.FunctionID
}

// New creates an empty catalog. No Main is designated until SetMain.
func New() *Catalog {
	return &Catalog{funcs: make(map[graph.FunctionID]*GraphFunction)}
}

// AddFunction registers a definition and returns its id.
func (c *Catalog) AddFunction(f *GraphFunction) graph.FunctionID {
	if f.Graph == nil {
		f.Graph = graph.New()
	}
	c.next++
	c.funcs[c.next] = f
	c.order = append(c.order, c.next)
	return c.next
}

// Function looks up a definition by id.
func (c *Catalog) Function(id graph.FunctionID) (*GraphFunction, bool) {
	f, ok := c.funcs[id]
	return f, ok
}

// FunctionByName looks up a definition by its user-visible name.
func (c *Catalog) FunctionByName(name string) (graph.FunctionID, *GraphFunction, bool) {
	for _, id := range c.order {
		if c.funcs[id].Name == name {
			return id, c.funcs[id], true
		}
	}
	return 0, nil, false
}

// Functions returns all ids in registration order.
func (c *Catalog) Functions() []graph.FunctionID {
	return slices.Clone(c.order)
}

// SetMain designates the Main function.
func (c *Catalog) SetMain(id graph.FunctionID) error {
	if _, ok := c.funcs[id]; !ok {
		return fmt.Errorf("function %d not found", id)
	}
	c.mainID = id
	return nil
}

// MainID returns the designated Main function id; zero when none is set.
func (c *Catalog) MainID() graph.FunctionID {
	return c.mainID
}

// RemoveFunction deletes a definition. Definitions flagged as not removable
// (Main in particular) are refused.
func (c *Catalog) RemoveFunction(id graph.FunctionID) error {
	f, ok := c.funcs[id]
	if !ok {
		return fmt.Errorf("function %d not found", id)
	}
	if !f.Removable {
		return fmt.Errorf("function %q is not removable", f.Name)
	}
	delete(c.funcs, id)
	c.order = slices.DeleteFunc(c.order, func(o graph.FunctionID) bool { return o == id })
	return nil
}

// RenameFunction renames a definition, refusing fixed names and duplicates.
func (c *Catalog) RenameFunction(id graph.FunctionID, name string) error {
	f, ok := c.funcs[id]
	if !ok {
		return fmt.Errorf("function %d not found", id)
	}
	if !f.Renamable {
		return fmt.Errorf("function %q cannot be renamed", f.Name)
	}
	if other, _, ok := c.FunctionByName(name); ok && other != id {
		return fmt.Errorf("function name %q already in use", name)
	}
	f.Name = name
	return nil
}
