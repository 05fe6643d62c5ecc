package typejson

// scalarKind is an enum for the indivisible JSON leaf kinds.
type scalarKind uint8

// The zero value signals a type that is no scalar at all.
const (
	kindInvalid scalarKind = iota
	kindString
	kindInt16
	kindInt32
	kindInt64
	kindFloat32
	kindFloat64
	kindDecimal
	kindBool
	kindGUID
)

// String generates a readable form of a kind meant for error text.
func (k scalarKind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindInt16:
		return "int16"
	case kindInt32:
		return "int32"
	case kindInt64:
		return "int64"
	case kindFloat32:
		return "float32"
	case kindFloat64:
		return "float64"
	case kindDecimal:
		return "decimal"
	case kindBool:
		return "bool"
	case kindGUID:
		return "guid"
	default:
		return "invalid"
	}
}
