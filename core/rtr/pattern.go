package rtr

import (
	"strings"
)

// normalize strips everything from the first '?' onward and trims
// leading and trailing slashes. Patterns and request paths go through
// the same normalization, so "/a/", "a" and "/a?x=1" all reduce to "a".
func normalize(path string) string {
	if q := strings.IndexByte(path, '?'); q != -1 {
		path = path[:q]
	}

	return strings.Trim(path, "/")
}

// SplitPath normalizes a raw path and splits it into its matchable
// tokens. An empty or all-slash path yields no tokens.
func SplitPath(path string) []string {
	path = normalize(path)
	if path == "" {
		return nil
	}

	return strings.Split(path, "/")
}

// ParsePattern compiles a route pattern into its segment sequence.
//
// Token forms:
//   - ":name"  -> parameter segment capturing one token as "name"
//   - "{name}" -> parameter segment capturing one token as "name"
//   - anything else -> static segment matched literally
//
// A bare ":" and the empty brace pair "{}" are not parameters; they
// fall through to literal static tokens, as does any token with stray
// brace characters. Parameter names are taken verbatim with no
// character-set validation. The empty pattern compiles to zero
// segments and matches only the root path.
func ParsePattern(pattern string) []Segment {
	tokens := SplitPath(pattern)
	if len(tokens) == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(tokens))

	for _, token := range tokens {
		if len(token) > 1 && token[0] == ':' {
			segments = append(segments, Segment{Kind: KindParam, Text: token[1:]})
			continue
		}

		if len(token) >= 3 && token[0] == '{' && token[len(token)-1] == '}' {
			if name := token[1 : len(token)-1]; name != "" {
				segments = append(segments, Segment{Kind: KindParam, Text: name})
				continue
			}
		}

		segments = append(segments, Segment{Kind: KindStatic, Text: token})
	}

	return segments
}
