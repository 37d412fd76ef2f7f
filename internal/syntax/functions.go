package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
	"github.com/phobologic/ars/internal/parse"
)

var fnRe = regexp.MustCompile(linePrefix + `(` + attrsPattern +
	`(?:pub(?:\s*\([^)]*\))?\s+)?(?:(?:const|async|unsafe|default)\s+)*(?:extern\s+(?:"[^"]*"\s*)?)?fn\s+(\w+))`)

// extractFunctions finds top-level functions that have a body. The signature
// runs from the first attribute up to the body's opening brace; a `;` first
// marks a declaration without a body, which is skipped.
func extractFunctions(s *source) []model.Function {
	var fns []model.Function
	for _, m := range fnRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		open, ok := signatureEnd(s.text, m[1])
		if !ok {
			continue
		}
		end, ok := Balance(s.text, open+1)
		if !ok {
			continue
		}
		body := strings.TrimSpace(s.text[open+1 : end])
		fns = append(fns, model.Function{
			Signature:  strings.TrimSpace(s.text[m[2]:open]),
			Statements: parse.Statements(body).Statements,
		})
	}
	return fns
}

// signatureEnd returns the offset of the body's `{` for a function whose
// name ends at i.
func signatureEnd(src string, i int) (int, bool) {
	i = skipSpace(src, i)
	if i < len(src) && src[i] == '<' {
		end, ok := scanAngles(src, i)
		if !ok {
			return -1, false
		}
		i = skipSpace(src, end)
	}
	if i >= len(src) || src[i] != '(' {
		return -1, false
	}
	params, ok := Balance(src, i+1)
	if !ok {
		return -1, false
	}
	open := scanClause(src, params+1, "{;")
	if open >= len(src) || src[open] != '{' {
		return -1, false
	}
	return open, true
}

func writeFunctions(b *strings.Builder, fns []model.Function) {
	for _, fn := range fns {
		b.WriteString(fn.Signature)
		if len(fn.Statements) == 0 {
			b.WriteString(" {}\n\n")
			continue
		}
		b.WriteString(" {\n")
		writeIndented(b, renderStatements(fn.Statements))
		b.WriteString("}\n\n")
	}
}

// renderStatements joins statement contents with newlines.
func renderStatements(stmts []model.Statement) string {
	contents := make([]string, len(stmts))
	for i, st := range stmts {
		contents[i] = st.Content
	}
	return strings.Join(contents, "\n")
}

func writeIndented(b *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString("    ")
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
}
