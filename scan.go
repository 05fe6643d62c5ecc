package typejson

import "strings"

// stripSpace removes whitespace lying outside double-quoted regions.
// A backslash inside a region escapes exactly one following character,
// so \" does not end the region. The pass is idempotent and is run
// before every decode and, defensively, after every encode.
func stripSpace(s string) string {
	buf := make([]byte, 0, len(s))
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			buf = append(buf, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '"':
			inString = true
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// splitMembers splits the interior of an object or array (outer
// delimiters already removed) into its top-level members. A comma is
// a boundary only outside string regions and at nesting depth zero.
// The final member runs to end of input; no terminal character is
// special-cased, the last member is flushed after the scan.
func splitMembers(interior string) []string {
	if interior == "" {
		return nil
	}
	var members []string
	depth := 0
	inString, escaped := false, false
	start := 0
	for i := 0; i < len(interior); i++ {
		c := interior[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ',':
			if depth == 0 {
				members = append(members, interior[start:i])
				start = i + 1
			}
		}
	}
	return append(members, interior[start:])
}

// splitKeyValue splits one object member on its first colon. The key
// has one leading and one trailing quote stripped if present; its
// content is not unescaped.
func splitKeyValue(member string) (key, value string, ok bool) {
	i := strings.IndexByte(member, ':')
	if i < 0 {
		return "", "", false
	}
	return trimQuotes(member[:i]), member[i+1:], true
}

func trimQuotes(s string) string {
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	return s
}
