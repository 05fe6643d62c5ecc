package typejson

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	uuidType    = reflect.TypeOf(uuid.UUID{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// shape is the coarse classification of a Go type.
type shape uint8

const (
	shapeInvalid shape = iota
	shapeScalar
	shapeSequence
	shapeRecord
)

// fieldBinding is one exported struct field visible to the codec.
type fieldBinding struct {
	name  string
	index int
	typ   reflect.Type
}

// descriptor is the classification of one Go type. Exactly one of
// kind, elem and fields is meaningful, selected by shape.
type descriptor struct {
	shape  shape
	kind   scalarKind
	elem   reflect.Type
	fields []fieldBinding
}

func (d *descriptor) field(name string) (fieldBinding, bool) {
	for _, f := range d.fields {
		if f.name == name {
			return f, true
		}
	}
	return fieldBinding{}, false
}

// classify maps a Go type to its codec shape. Named scalar types are
// matched before kinds so that uuid.UUID (an array) and
// decimal.Decimal (a struct) do not fall through to sequence or
// record handling. Types that behave like sequences without being
// slices or arrays are records if they are structs and unsupported
// otherwise.
func classify(t reflect.Type) descriptor {
	switch t {
	case uuidType:
		return descriptor{shape: shapeScalar, kind: kindGUID}
	case decimalType:
		return descriptor{shape: shapeScalar, kind: kindDecimal}
	}
	switch t.Kind() {
	case reflect.String:
		return descriptor{shape: shapeScalar, kind: kindString}
	case reflect.Int16:
		return descriptor{shape: shapeScalar, kind: kindInt16}
	case reflect.Int32:
		return descriptor{shape: shapeScalar, kind: kindInt32}
	case reflect.Int, reflect.Int64:
		return descriptor{shape: shapeScalar, kind: kindInt64}
	case reflect.Float32:
		return descriptor{shape: shapeScalar, kind: kindFloat32}
	case reflect.Float64:
		return descriptor{shape: shapeScalar, kind: kindFloat64}
	case reflect.Bool:
		return descriptor{shape: shapeScalar, kind: kindBool}
	case reflect.Slice, reflect.Array:
		return descriptor{shape: shapeSequence, elem: t.Elem()}
	case reflect.Struct:
		ff := make([]fieldBinding, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			ff = append(ff, fieldBinding{name: sf.Name, index: i, typ: sf.Type})
		}
		return descriptor{shape: shapeRecord, fields: ff}
	default:
		return descriptor{}
	}
}

// descCache holds one immutable descriptor per type, stored on first
// use and never replaced. Re-classifying on every call would redo the
// field walk for each value of the same type.
var descCache sync.Map // reflect.Type -> *descriptor

func descriptorOf(t reflect.Type) *descriptor {
	if d, ok := descCache.Load(t); ok {
		return d.(*descriptor)
	}
	d := classify(t)
	actual, _ := descCache.LoadOrStore(t, &d)
	return actual.(*descriptor)
}
