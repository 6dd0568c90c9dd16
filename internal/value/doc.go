// Package value defines the data types that graph ports can carry and the
// tagged constant values that live inline on unconnected inputs.
//
// The Execution type is special: it marks control-flow ports, carries no
// value, and never renders into script text. All other types wrap a cty.Value
// so that inline constants decoded from HCL documents and constants built
// programmatically share one representation.
package value
