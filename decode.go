package typejson

import (
	"reflect"

	"github.com/pkg/errors"
)

// Unmarshal parses data into the value pointed to by v. v must be a
// non-nil pointer; anything else is an ErrConstruction. Decoding
// aborts on the first error and leaves no partial result guarantee.
func (c *Codec) Unmarshal(data []byte, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Wrapf(ErrConstruction, "target must be a non-nil pointer, have %T", v)
	}
	return c.decode(stripSpace(string(data)), rv.Elem())
}

func (c *Codec) decode(text string, v reflect.Value) error {
	if text == "null" {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return c.decode(text, v.Elem())
	}
	d := descriptorOf(v.Type())
	switch d.shape {
	case shapeScalar:
		return c.decodeScalar(text, d.kind, v)
	case shapeSequence:
		return c.decodeArray(text, d, v)
	case shapeRecord:
		return c.decodeObject(text, d, v)
	default:
		return &UnsupportedTypeError{Type: v.Type()}
	}
}

// decodeObject fills a struct from brace-delimited text. Members with
// no matching exported field are ignored; fields with no member keep
// their zero value. Key matching is exact and case-sensitive.
func (c *Codec) decodeObject(text string, d *descriptor, v reflect.Value) error {
	if len(text) < 2 || text[0] != '{' || text[len(text)-1] != '}' {
		return errors.Wrapf(ErrMalformedInput, "object %s is not brace-delimited", clip(text))
	}
	v.Set(reflect.Zero(v.Type()))
	for _, member := range splitMembers(text[1 : len(text)-1]) {
		key, raw, ok := splitKeyValue(member)
		if !ok {
			return errors.Wrapf(ErrMalformedInput, "member %s has no colon", clip(member))
		}
		f, ok := d.field(key)
		if !ok {
			continue
		}
		if err := c.decode(raw, v.Field(f.index)); err != nil {
			return errors.Wrapf(err, "field %s", f.name)
		}
	}
	return nil
}

// decodeArray fills a slice from bracket-delimited text, appending
// elements in member order. Slices are the one appendable sequence
// shape; fixed arrays encode but do not decode.
func (c *Codec) decodeArray(text string, d *descriptor, v reflect.Value) error {
	if len(text) < 2 || text[0] != '[' || text[len(text)-1] != ']' {
		return errors.Wrapf(ErrMalformedInput, "array %s is not bracket-delimited", clip(text))
	}
	if v.Kind() != reflect.Slice {
		return errors.Wrapf(ErrNotSupported, "cannot append to %s", v.Type())
	}
	members := splitMembers(text[1 : len(text)-1])
	out := reflect.MakeSlice(v.Type(), 0, len(members))
	for i, member := range members {
		elem := reflect.New(d.elem).Elem()
		if err := c.decode(member, elem); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
		out = reflect.Append(out, elem)
	}
	v.Set(out)
	return nil
}
