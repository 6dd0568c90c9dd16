package value

import (
	"fmt"
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Type identifies the kind of data a port carries. The set is closed; the
// graph UI only ever offers these five.
type Type int

const (
	TypeString Type = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeExecution
)

// String returns the display name of the type, matching the keyword used in
// graph document files.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeExecution:
		return "execution"
	default:
		return fmt.Sprintf("value.Type(%d)", int(t))
	}
}

// TypeFromKeyword parses a type keyword as written in graph documents.
func TypeFromKeyword(keyword string) (Type, error) {
	switch keyword {
	case "string":
		return TypeString, nil
	case "integer":
		return TypeInteger, nil
	case "float":
		return TypeFloat, nil
	case "boolean":
		return TypeBoolean, nil
	case "execution":
		return TypeExecution, nil
	default:
		return TypeString, fmt.Errorf("unknown type keyword %q", keyword)
	}
}

// IsExecution reports whether the type is the control-flow marker type.
func (t Type) IsExecution() bool {
	return t == TypeExecution
}

// ctyType maps a Type onto its cty representation. Execution has no value
// representation and maps to NilType.
func (t Type) ctyType() cty.Type {
	switch t {
	case TypeString:
		return cty.String
	case TypeInteger, TypeFloat:
		return cty.Number
	case TypeBoolean:
		return cty.Bool
	default:
		return cty.NilType
	}
}

// Value is a tagged constant. The tag always agrees with the wrapped cty
// value; constructors are the only way to build one.
type Value struct {
	typ Type
	raw cty.Value
}

// String builds a string constant.
func String(s string) Value {
	return Value{typ: TypeString, raw: cty.StringVal(s)}
}

// Integer builds an integer constant.
func Integer(i int64) Value {
	return Value{typ: TypeInteger, raw: cty.NumberIntVal(i)}
}

// Float builds a float constant.
func Float(f float64) Value {
	return Value{typ: TypeFloat, raw: cty.NumberFloatVal(f)}
}

// Bool builds a boolean constant.
func Bool(b bool) Value {
	return Value{typ: TypeBoolean, raw: cty.BoolVal(b)}
}

// Execution builds the empty marker value for execution-typed ports.
func Execution() Value {
	return Value{typ: TypeExecution, raw: cty.NilVal}
}

// Zero returns the default constant for a type: empty string, zero numbers,
// false, or the execution marker.
func Zero(t Type) Value {
	switch t {
	case TypeString:
		return String("")
	case TypeInteger:
		return Integer(0)
	case TypeFloat:
		return Float(0)
	case TypeBoolean:
		return Bool(false)
	default:
		return Execution()
	}
}

// FromCty converts an arbitrary cty value (typically decoded from an HCL
// expression) into a constant of the given type, applying cty's standard
// conversion rules.
func FromCty(t Type, cv cty.Value) (Value, error) {
	if t == TypeExecution {
		return Value{}, fmt.Errorf("execution ports cannot carry a constant")
	}
	converted, err := convert.Convert(cv, t.ctyType())
	if err != nil {
		return Value{}, fmt.Errorf("cannot use %s as %s: %w", cv.Type().FriendlyName(), t, err)
	}
	if t == TypeInteger {
		if _, acc := converted.AsBigFloat().Int64(); acc != 0 {
			return Value{}, fmt.Errorf("value %s is not a whole number", converted.AsBigFloat().Text('g', -1))
		}
	}
	return Value{typ: t, raw: converted}, nil
}

// Type returns the tag of the constant.
func (v Value) Type() Type {
	return v.typ
}

// Cty exposes the wrapped cty value. Execution values return NilVal.
func (v Value) Cty() cty.Value {
	return v.raw
}

// Render produces the script-text literal for the constant: strings are
// quoted, numbers and booleans render bare, execution values render empty.
func (v Value) Render() string {
	switch v.typ {
	case TypeString:
		return strconv.Quote(v.raw.AsString())
	case TypeInteger:
		i, _ := v.raw.AsBigFloat().Int64()
		return strconv.FormatInt(i, 10)
	case TypeFloat:
		f, _ := v.raw.AsBigFloat().Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case TypeBoolean:
		return strconv.FormatBool(v.raw.True())
	default:
		return ""
	}
}
