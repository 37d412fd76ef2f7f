package syntax

// Balance finds the close matching an already-consumed opening delimiter.
// start is the offset just past the opener, where the depth is 1. Every
// `{`, `(` and `[` raises the depth and every `}`, `)` and `]` lowers it; the
// offset of the close that brings the depth to 0 is returned.
//
// Delimiters inside string literals, char literals and comments are counted
// like any other. ok is false when the text ends before the depth returns to 0.
func Balance(src string, start int) (end int, ok bool) {
	depth := 1
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// source is one file's text plus the delimiter depth at every offset, so the
// extractors can keep only constructs that start at the top level.
type source struct {
	text   string
	depths []int32
}

func newSource(text string) *source {
	depths := make([]int32, len(text)+1)
	var depth int32
	for i := 0; i < len(text); i++ {
		depths[i] = depth
		switch text[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			if depth > 0 {
				depth--
			}
		}
	}
	depths[len(text)] = depth
	return &source{text: text, depths: depths}
}

// topLevel reports whether offset off lies outside every delimiter pair.
func (s *source) topLevel(off int) bool {
	return s.depths[off] == 0
}
