package typejson

import "strconv"

// Codec converts Go values to and from JSON text. Its Format is
// fixed at construction; a Codec holds no other state and may be
// shared freely between goroutines.
type Codec struct {
	format Format
}

// New builds a Codec. Without options it tolerates ',' as a digit
// group separator on numeric decode.
func New(opts ...Option) *Codec {
	f := defaultFormat
	for _, o := range opts {
		o(&f)
	}
	return &Codec{format: f}
}

// std backs the package-level entry points. It is never mutated.
var std = New()

// Marshal returns the JSON encoding of v using the default Codec.
func Marshal(v interface{}) ([]byte, error) { return std.Marshal(v) }

// Unmarshal parses data into the value pointed to by v using the
// default Codec.
func Unmarshal(data []byte, v interface{}) error { return std.Unmarshal(data, v) }

// Valid reports whether data is structurally well-formed under the
// default Codec's grammar.
func Valid(data []byte) bool { return std.Valid(data) }

// Valid reports whether data is structurally well-formed: balanced
// delimiters, colon-separated object members, closed strings and
// parseable numbers. It needs no target type.
func (c *Codec) Valid(data []byte) bool {
	return c.validValue(stripSpace(string(data)))
}

func (c *Codec) validValue(text string) bool {
	switch {
	case text == "":
		return false
	case text == "null", text == "true", text == "false":
		return true
	case text[0] == '{':
		if text[len(text)-1] != '}' {
			return false
		}
		for _, member := range splitMembers(text[1 : len(text)-1]) {
			_, raw, ok := splitKeyValue(member)
			if !ok || !c.validValue(raw) {
				return false
			}
		}
		return true
	case text[0] == '[':
		if text[len(text)-1] != ']' {
			return false
		}
		for _, member := range splitMembers(text[1 : len(text)-1]) {
			if !c.validValue(member) {
				return false
			}
		}
		return true
	case text[0] == '"':
		return validString(text)
	default:
		_, err := strconv.ParseFloat(c.normalizeNumber(text), 64)
		return err == nil
	}
}

func validString(text string) bool {
	if len(text) < 2 || text[0] != '"' {
		return false
	}
	escaped := false
	for i := 1; i < len(text); i++ {
		switch {
		case escaped:
			escaped = false
		case text[i] == '\\':
			escaped = true
		case text[i] == '"':
			return i == len(text)-1
		}
	}
	return false
}

// Typed adapts a Codec to a single value type, the shape expected by
// generic Codec[V] call sites.
type Typed[V any] struct {
	c *Codec
}

// As derives the typed facade for V from c.
func As[V any](c *Codec) Typed[V] {
	return Typed[V]{c: c}
}

func (t Typed[V]) Encode(v V) ([]byte, error) { return t.c.Marshal(v) }

func (t Typed[V]) Decode(data []byte) (V, error) {
	var v V
	err := t.c.Unmarshal(data, &v)
	return v, err
}
