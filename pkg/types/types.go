// Package types defines the closed set of Flavor types understood by the
// checker. All implementations are comparable value types so exact structural
// equality is plain ==; there is no numeric promotion anywhere.
package types

// Type is implemented by every Flavor type.
type Type interface {
	Name() string
}

type PrimitiveKind string

const (
	PrimitiveInt    PrimitiveKind = "Int"
	PrimitiveFloat  PrimitiveKind = "Float"
	PrimitiveBool   PrimitiveKind = "Bool"
	PrimitiveString PrimitiveKind = "String"
	PrimitiveUnit   PrimitiveKind = "Unit"
)

// Primitive is one of the built-in types.
type Primitive struct {
	Kind PrimitiveKind
}

func (p Primitive) Name() string { return string(p.Kind) }

// Singleton values for the built-in types.
var (
	Int    = Primitive{Kind: PrimitiveInt}
	Float  = Primitive{Kind: PrimitiveFloat}
	Bool   = Primitive{Kind: PrimitiveBool}
	String = Primitive{Kind: PrimitiveString}
	Unit   = Primitive{Kind: PrimitiveUnit}
)

// Custom is an unresolved placeholder for a future user-defined type system.
// The checker never validates the name against anything.
type Custom struct {
	TypeName string
}

func (c Custom) Name() string { return "Custom:" + c.TypeName }

// Equal reports exact structural equality. Int and Float are never
// interchangeable.
func Equal(a, b Type) bool {
	return a == b
}
