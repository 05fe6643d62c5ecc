package typejson

import (
	"bytes"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// encodeScalar writes the textual form of one leaf value. Strings
// escape only backslash and double quote; numbers use the invariant
// strconv forms with '.' as the decimal separator.
func encodeScalar(buf *bytes.Buffer, kind scalarKind, v reflect.Value) {
	switch kind {
	case kindString:
		quoteString(buf, v.String())
	case kindInt16, kindInt32, kindInt64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case kindFloat32:
		buf.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case kindFloat64:
		buf.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case kindDecimal:
		buf.WriteString(v.Interface().(decimal.Decimal).String())
	case kindBool:
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case kindGUID:
		buf.WriteByte('"')
		buf.WriteString(v.Interface().(uuid.UUID).String())
		buf.WriteByte('"')
	}
}

func quoteString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(c)
	}
	buf.WriteByte('"')
}

// decodeScalar parses one leaf value into v, which must hold the
// concrete type of kind.
func (c *Codec) decodeScalar(text string, kind scalarKind, v reflect.Value) error {
	switch kind {
	case kindString:
		s, err := unquote(text)
		if err != nil {
			return err
		}
		v.SetString(s)
	case kindInt16, kindInt32, kindInt64:
		n, err := c.parseInt(text, kind)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case kindFloat32, kindFloat64:
		f, err := c.parseFloat(text, kind)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case kindDecimal:
		d, err := decimal.NewFromString(c.normalizeNumber(text))
		if err != nil {
			return &FormatError{kind: kind, text: text, err: err}
		}
		v.Set(reflect.ValueOf(d))
	case kindBool:
		// Anything that is not "true" (any casing) decodes to false;
		// garbage does not raise.
		v.SetBool(strings.EqualFold(text, "true"))
	case kindGUID:
		inner, err := unquote(text)
		if err != nil {
			return err
		}
		u, err := uuid.Parse(inner)
		if err != nil {
			return &FormatError{kind: kind, text: text, err: err}
		}
		v.Set(reflect.ValueOf(u))
	default:
		return errors.Wrapf(ErrNotSupported, "scalar kind %d", kind)
	}
	return nil
}

// unquote strips the outer quotes and collapses every backslash with
// its following character to that character. \\ and \" come out
// right; any other escape keeps the literal character and loses the
// backslash.
func unquote(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", errors.Wrapf(ErrMalformedInput, "%s is not quote-delimited", clip(text))
	}
	s := text[1 : len(text)-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		buf = append(buf, s[i])
	}
	return string(buf), nil
}

func (c *Codec) parseInt(text string, kind scalarKind) (int64, error) {
	bits := 64
	switch kind {
	case kindInt16:
		bits = 16
	case kindInt32:
		bits = 32
	}
	n, err := strconv.ParseInt(c.normalizeNumber(text), 10, bits)
	if err != nil {
		return 0, &FormatError{kind: kind, text: text, err: err}
	}
	return n, nil
}

func (c *Codec) parseFloat(text string, kind scalarKind) (float64, error) {
	bits := 64
	if kind == kindFloat32 {
		bits = 32
	}
	f, err := strconv.ParseFloat(c.normalizeNumber(text), bits)
	if err != nil {
		return 0, &FormatError{kind: kind, text: text, err: err}
	}
	return f, nil
}

// normalizeNumber drops the configured group separator. strconv and
// decimal already accept a leading sign and exponent notation, which
// covers the rest of the permissive numeric grammar.
func (c *Codec) normalizeNumber(s string) string {
	if c.format.groupSep == 0 {
		return s
	}
	return strings.ReplaceAll(s, string(c.format.groupSep), "")
}
