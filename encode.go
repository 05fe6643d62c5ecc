package typejson

import (
	"bytes"
	"reflect"
)

// Marshal returns the JSON encoding of v. Nil values and nil
// pointers encode as null; sequences as arrays in element order;
// records as objects with one member per exported field in
// declaration order. Types outside the scalar/sequence/record model
// yield an *UnsupportedTypeError.
func (c *Codec) Marshal(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	if v == nil {
		buf.WriteString("null")
		return buf.Bytes(), nil
	}
	if err := c.encode(buf, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	// The walk never emits whitespace; one defensive pass keeps the
	// output invariant anyway.
	return []byte(stripSpace(buf.String())), nil
}

func (c *Codec) encode(buf *bytes.Buffer, v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return c.encode(buf, v.Elem())
	}
	d := descriptorOf(v.Type())
	switch d.shape {
	case shapeScalar:
		encodeScalar(buf, d.kind, v)
	case shapeSequence:
		if v.Kind() == reflect.Slice && v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := c.encode(buf, v.Index(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case shapeRecord:
		buf.WriteByte('{')
		for i, f := range d.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(f.name)
			buf.WriteString(`":`)
			if err := c.encode(buf, v.Field(f.index)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return &UnsupportedTypeError{Type: v.Type()}
	}
	return nil
}
