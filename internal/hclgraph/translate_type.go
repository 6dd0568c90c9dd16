// This file contains the logic for turning HCL type expressions (bare
// keywords such as `string` or `boolean`) into port types, and for decoding
// optional default literals against them.

package hclgraph

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/flowscript/internal/value"
)

// typeExprToType converts an HCL type expression into its value.Type
// equivalent. Only bare primitive keywords are accepted; this document
// format has no collection types.
func typeExprToType(expr hcl.Expression) (value.Type, error) {
	if expr == nil {
		return value.TypeString, fmt.Errorf("missing type")
	}

	traversal, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return value.TypeString, fmt.Errorf("unsupported expression for type definition: %T", expr)
	}
	if len(traversal.Traversal) != 1 {
		return value.TypeString, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
	}
	return value.TypeFromKeyword(traversal.Traversal.RootName())
}

// defaultFor decodes the optional default literal of a declaration against
// its declared type, falling back to the type's zero value.
func defaultFor(t value.Type, expr hcl.Expression) (value.Value, error) {
	if expr == nil {
		return value.Zero(t), nil
	}
	if t.IsExecution() {
		return value.Value{}, fmt.Errorf("execution declarations take no default")
	}
	cv, diags := expr.Value(nil)
	if diags.HasErrors() {
		return value.Value{}, fmt.Errorf("invalid default: %w", diags)
	}
	return value.FromCty(t, cv)
}
