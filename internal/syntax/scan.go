package syntax

import (
	"regexp"
	"strings"
)

// Shared pattern fragments. Every construct pattern is anchored at the start
// of a line and captures the outer attributes that precede it; line comments
// may sit between the attributes and the item.
const (
	linePrefix   = `(?m)^[ \t]*`
	attrsPattern = `((?:#\[[^\]]*\](?:\s|//[^\n]*\n)*)*)`
	visPattern   = `(pub(?:\s*\([^)]*\))?\s+)?`
)

var (
	outerAttrRe = regexp.MustCompile(`#\[[^\]]*\]`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// outerAttributes returns each `#[...]` in a captured attribute prefix.
func outerAttributes(prefix string) []string {
	return outerAttrRe.FindAllString(prefix, -1)
}

func collapseWhitespace(s string) string {
	return spaceRunRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

func skipSpace(src string, i int) int {
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// readWord returns the identifier starting at i and the offset after it.
func readWord(src string, i int) (string, int) {
	j := i
	for j < len(src) && isWordByte(src[j]) {
		j++
	}
	return src[i:j], j
}

// closesAngle reports whether the `>` at i closes a generic list rather than
// being part of `->` or `=>`.
func closesAngle(src string, i int) bool {
	return i == 0 || (src[i-1] != '-' && src[i-1] != '=')
}

// scanAngles returns the offset just past the `>` matching the `<` at i.
func scanAngles(src string, i int) (int, bool) {
	depth := 0
	for ; i < len(src); i++ {
		switch src[i] {
		case '<':
			depth++
		case '>':
			if !closesAngle(src, i) {
				continue
			}
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case '{', ';':
			return -1, false
		}
	}
	return -1, false
}

// scanClause returns the offset of the first byte in stops that is not nested
// inside `()`, `[]` or `<>`, or len(src) when there is none. It is used on
// type positions (bounds, where clauses, impl headers) where every `<` opens
// a generic list.
func scanClause(src string, i int, stops string) int {
	depth := 0
	for ; i < len(src); i++ {
		c := src[i]
		if depth == 0 && strings.IndexByte(stops, c) >= 0 {
			return i
		}
		switch c {
		case '(', '[', '<':
			depth++
		case ')', ']':
			depth--
		case '>':
			if closesAngle(src, i) {
				depth--
			}
		}
	}
	return len(src)
}

// keywordIndex finds kw as a whole word outside `()`, `[]` and `<>`.
// When spaced is set the word must be surrounded by whitespace.
func keywordIndex(text, kw string, spaced bool) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(', '[', '<':
			depth++
			continue
		case ')', ']':
			depth--
			continue
		case '>':
			if closesAngle(text, i) {
				depth--
			}
			continue
		}
		if depth != 0 || !strings.HasPrefix(text[i:], kw) {
			continue
		}
		end := i + len(kw)
		if spaced {
			if i == 0 || !isSpace(text[i-1]) || end >= len(text) || !isSpace(text[end]) {
				continue
			}
		} else if (i > 0 && isWordByte(text[i-1])) || (end < len(text) && isWordByte(text[end])) {
			continue
		}
		return i
	}
	return -1
}

// hasWordAt reports whether the identifier kw starts at offset i.
func hasWordAt(src string, i int, kw string) bool {
	end := i + len(kw)
	return strings.HasPrefix(src[i:], kw) && (end == len(src) || !isWordByte(src[end]))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// splitWhere splits a header clause at a top-level `where`.
func splitWhere(clause string) (before, where string) {
	if w := keywordIndex(clause, "where", false); w >= 0 {
		return strings.TrimSpace(clause[:w]), collapseWhitespace(clause[w+len("where"):])
	}
	return strings.TrimSpace(clause), ""
}

// header is the part of a construct between its name and its opener.
type header struct {
	generics string
	bounds   string
	where    string
	open     int
}

// scanHeader reads the generics, optional `: bounds` and optional where
// clause that follow a construct name at offset i, and stops at the first
// byte in openers. `(` is only accepted as an opener when no where clause
// came first.
func scanHeader(src string, i int, openers string) (header, bool) {
	var h header
	i = skipSpace(src, i)
	if i < len(src) && src[i] == '<' {
		end, ok := scanAngles(src, i)
		if !ok {
			return h, false
		}
		h.generics = collapseWhitespace(src[i:end])
		i = skipSpace(src, end)
	}

	switch {
	case i < len(src) && src[i] == ':' && !strings.HasPrefix(src[i:], "::"):
		end := scanClause(src, i+1, "{;")
		h.bounds, h.where = splitWhere(src[i+1 : end])
		h.bounds = collapseWhitespace(h.bounds)
		i = end
	case hasWordAt(src, i, "where"):
		end := scanClause(src, i, "{;")
		_, h.where = splitWhere(src[i:end])
		i = end
	}

	if i >= len(src) || strings.IndexByte(openers, src[i]) < 0 {
		return h, false
	}
	h.open = i
	return h, true
}

// splitTopLevel splits a construct body on commas that are not nested inside
// `()`, `[]`, `{}` or a generic argument list, trimming each piece and
// dropping empty ones. A `<` opens a generic list only when it directly
// follows an identifier character or `:` and is not part of `<<` or `<=`.
// Once a piece has a top-level `=`, the next top-level comma ends it
// regardless of open angles.
func splitTopLevel(body string) []string {
	var (
		parts    []string
		depth    int
		angle    int
		start    int
		assigned bool
	)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '<':
			// `<<` and `<=` are operators.
			if i+1 < len(body) && (body[i+1] == '<' || body[i+1] == '=') {
				i++
				continue
			}
			if i > 0 && (isWordByte(body[i-1]) || body[i-1] == ':') {
				angle++
			}
		case '>':
			if angle > 0 && closesAngle(body, i) {
				angle--
			}
		case '=':
			if depth == 0 && angle == 0 && (i+1 == len(body) || (body[i+1] != '>' && body[i+1] != '=')) {
				assigned = true
			}
		case ',':
			// After a discriminant's `=` the piece is an expression, where a
			// stray `<` is a comparison rather than generics.
			if depth == 0 && (angle == 0 || assigned) {
				parts = appendTrimmed(parts, body[start:i])
				start = i + 1
				angle = 0
				assigned = false
			}
		}
	}
	return appendTrimmed(parts, body[start:])
}

func appendTrimmed(parts []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		parts = append(parts, s)
	}
	return parts
}

// bodyLines splits a block body by line, trimming each and dropping blanks.
func bodyLines(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		lines = appendTrimmed(lines, line)
	}
	return lines
}
