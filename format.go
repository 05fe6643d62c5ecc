package typejson

// Format is the numeric-format configuration of a Codec. It is fixed
// at construction and never mutated afterwards, so a Codec is safe
// for concurrent use.
type Format struct {
	// groupSep, when non-zero, is tolerated between digits on decode
	// and stripped before parsing. Encoding never emits it.
	groupSep rune
}

var defaultFormat = Format{groupSep: ','}

// Option adjusts the Format of a Codec under construction.
type Option func(*Format)

// WithGroupSeparator sets the digit group separator tolerated on
// numeric decode. Pass 0 to accept none.
func WithGroupSeparator(r rune) Option {
	return func(f *Format) { f.groupSep = r }
}
