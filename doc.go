/*
Package typejson encodes and decodes JSON driven entirely by runtime
inspection of the target type. A type is classified once as a scalar
(string, integer, float, decimal, boolean, UUID), a sequence (slice or
array) or a record (struct with exported fields), and the codec walks
values recursively along that classification.

The grammar is conventional JSON with documented deviations: numeric
decoding is permissive (leading sign, exponents, optional group
separators), string escaping is limited to \\ and \", and record
members are emitted in struct declaration order.

typejson is partly compatible with encoding/json for the shapes it
supports; it has no streaming mode and no struct tags.
*/
package typejson // import "github.com/jmkw/typejson"
