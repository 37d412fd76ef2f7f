// Package toon renders a model.File inventory in TOON (Token-Oriented Object
// Notation).
package toon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
	"github.com/phobologic/ars/internal/syntax"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	fnNameRe     = regexp.MustCompile(`\bfn\s+(\w+)`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// Encode converts the model of the file at path into TOON format.
func Encode(path string, f *model.File) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("file: %s", encodeValue(path)))

	var countRows [][]string
	for _, c := range syntax.Counts(f) {
		countRows = append(countRows, []string{c.Name, fmt.Sprintf("%d", c.Count)})
	}
	parts = append(parts, formatTabular("counts", []string{"category", "count"}, countRows))
	parts = append(parts, formatTabular("constructs", []string{"category", "name", "detail"}, constructRows(f)))

	var stmtRows [][]string
	for i := range f.Functions {
		fn := &f.Functions[i]
		name := FunctionName(fn.Signature)
		for _, st := range fn.Statements {
			stmtRows = append(stmtRows, []string{name, st.Kind.String(), st.Content})
		}
	}
	parts = append(parts, formatTabular("statements", []string{"function", "kind", "content"}, stmtRows))

	return strings.Join(parts, "\n")
}

// FunctionName returns the identifier after `fn` in a signature, or the whole
// signature when there is none.
func FunctionName(signature string) string {
	if m := fnNameRe.FindStringSubmatch(signature); m != nil {
		return m[1]
	}
	return signature
}

func constructRows(f *model.File) [][]string {
	var rows [][]string
	add := func(category, name, detail string) {
		rows = append(rows, []string{category, name, detail})
	}

	for _, a := range f.Attributes {
		detail := a.Kind.String()
		if a.Target != "" {
			detail = a.Target
		}
		add("attributes", a.Content, detail)
	}
	for _, imp := range f.Imports {
		add("imports", imp.Path, imp.Kind.String())
	}
	for _, c := range f.Constants {
		add("constants", c.Name, c.Type)
	}
	for _, s := range f.Statics {
		typ := s.Type
		if s.Mutable {
			typ = "mut " + typ
		}
		add("statics", s.Name, typ)
	}
	for _, a := range f.TypeAliases {
		add("type_aliases", a.Name, a.Type)
	}
	for _, m := range f.Macros {
		add("macros", m.Name, m.Kind.String())
	}
	for _, s := range f.Structs {
		add("structs", s.Name+s.Generics, s.Shape.String())
	}
	for _, e := range f.Enums {
		add("enums", e.Name+e.Generics, fmt.Sprintf("%d variants", len(e.Variants)))
	}
	for _, t := range f.Traits {
		add("traits", t.Name+t.Generics, t.Bounds)
	}
	for _, b := range f.ImplBlocks {
		detail := "inherent"
		if b.IsTraitImpl() {
			detail = b.Trait
		}
		add("impl_blocks", b.Target, detail)
	}
	for _, m := range f.Modules {
		detail := "file"
		if m.Inline {
			detail = "inline"
		}
		add("modules", m.Name, detail)
	}
	for _, fn := range f.Functions {
		add("functions", FunctionName(fn.Signature), fmt.Sprintf("%d statements", len(fn.Statements)))
	}
	return rows
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
