package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

var (
	structRe = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `struct\s+(\w+)`)
	enumRe   = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `enum\s+(\w+)`)
)

func extractStructs(s *source) []model.Struct {
	var structs []model.Struct
	for _, m := range structRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		h, ok := scanHeader(s.text, m[1], "{(;")
		if !ok {
			continue
		}
		st := model.Struct{
			Name:       group(s.text, m, 3),
			Generics:   h.generics,
			Where:      h.where,
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
		}

		switch s.text[h.open] {
		case ';':
			st.Shape = model.Unit
		case '{':
			end, ok := Balance(s.text, h.open+1)
			if !ok {
				continue
			}
			st.Shape = model.Record
			st.Members = splitTopLevel(s.text[h.open+1 : end])
		case '(':
			end, ok := Balance(s.text, h.open+1)
			if !ok {
				continue
			}
			// A tuple struct may carry its where clause after the fields.
			tail := scanClause(s.text, end+1, "{;")
			if tail >= len(s.text) || s.text[tail] != ';' {
				continue
			}
			if _, w := splitWhere(s.text[end+1 : tail]); w != "" {
				st.Where = w
			}
			st.Shape = model.Tuple
			st.Members = splitTopLevel(s.text[h.open+1 : end])
		}
		structs = append(structs, st)
	}
	return structs
}

func extractEnums(s *source) []model.Enum {
	var enums []model.Enum
	for _, m := range enumRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		h, ok := scanHeader(s.text, m[1], "{")
		if !ok {
			continue
		}
		end, ok := Balance(s.text, h.open+1)
		if !ok {
			continue
		}
		enums = append(enums, model.Enum{
			Name:       group(s.text, m, 3),
			Generics:   h.generics,
			Where:      h.where,
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
			Variants:   splitTopLevel(s.text[h.open+1 : end]),
		})
	}
	return enums
}

func writeStructs(b *strings.Builder, structs []model.Struct) {
	for _, st := range structs {
		writeItemAttributes(b, st.Attributes)
		b.WriteString(visibilityPrefix(st.Visibility))
		b.WriteString("struct ")
		b.WriteString(st.Name)
		b.WriteString(st.Generics)

		switch st.Shape {
		case model.Unit:
			b.WriteString(whereSuffix(st.Where))
			b.WriteString(";\n\n")
		case model.Tuple:
			b.WriteByte('(')
			b.WriteString(strings.Join(st.Members, ", "))
			b.WriteByte(')')
			b.WriteString(whereSuffix(st.Where))
			b.WriteString(";\n\n")
		default:
			b.WriteString(whereSuffix(st.Where))
			writeList(b, st.Members)
		}
	}
}

func writeEnums(b *strings.Builder, enums []model.Enum) {
	for _, e := range enums {
		writeItemAttributes(b, e.Attributes)
		b.WriteString(visibilityPrefix(e.Visibility))
		b.WriteString("enum ")
		b.WriteString(e.Name)
		b.WriteString(e.Generics)
		b.WriteString(whereSuffix(e.Where))
		writeList(b, e.Variants)
	}
}

// writeList writes a braced block with one comma-terminated item per line.
func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString(" {}\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, item := range items {
		b.WriteString("    ")
		b.WriteString(item)
		b.WriteString(",\n")
	}
	b.WriteString("}\n\n")
}

func whereSuffix(where string) string {
	if where == "" {
		return ""
	}
	return " where " + where
}
