package syntax

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

// The value runs to the first `;`, so a `;` inside the value (an array
// repeat expression, a block) ends it early.
var (
	constRe  = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `const\s+(\w+)\s*:\s*([^=]+?)\s*=\s*([^;]+);`)
	staticRe = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `static\s+(mut\s+)?(\w+)\s*:\s*([^=]+?)\s*=\s*([^;]+);`)
	aliasRe  = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `type\s+(\w+(?:\s*<[^=;]*>)?)\s*=\s*([^;]+);`)
)

func extractConstants(s *source) []model.Constant {
	var consts []model.Constant
	for _, m := range constRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		consts = append(consts, model.Constant{
			Name:       group(s.text, m, 3),
			Type:       collapseWhitespace(group(s.text, m, 4)),
			Value:      strings.TrimSpace(group(s.text, m, 5)),
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
		})
	}
	return consts
}

func extractStatics(s *source) []model.Static {
	var statics []model.Static
	for _, m := range staticRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		statics = append(statics, model.Static{
			Name:       group(s.text, m, 4),
			Type:       collapseWhitespace(group(s.text, m, 5)),
			Value:      strings.TrimSpace(group(s.text, m, 6)),
			Mutable:    group(s.text, m, 3) != "",
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
		})
	}
	return statics
}

func extractTypeAliases(s *source) []model.TypeAlias {
	var aliases []model.TypeAlias
	for _, m := range aliasRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		aliases = append(aliases, model.TypeAlias{
			Name:       strings.Replace(collapseWhitespace(group(s.text, m, 3)), " <", "<", 1),
			Type:       collapseWhitespace(group(s.text, m, 4)),
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
		})
	}
	return aliases
}

func writeConstants(b *strings.Builder, consts []model.Constant) {
	for _, c := range consts {
		writeItemAttributes(b, c.Attributes)
		fmt.Fprintf(b, "%sconst %s: %s = %s;\n", visibilityPrefix(c.Visibility), c.Name, c.Type, c.Value)
	}
	if len(consts) > 0 {
		b.WriteByte('\n')
	}
}

func writeStatics(b *strings.Builder, statics []model.Static) {
	for _, s := range statics {
		writeItemAttributes(b, s.Attributes)
		mut := ""
		if s.Mutable {
			mut = "mut "
		}
		fmt.Fprintf(b, "%sstatic %s%s: %s = %s;\n", visibilityPrefix(s.Visibility), mut, s.Name, s.Type, s.Value)
	}
	if len(statics) > 0 {
		b.WriteByte('\n')
	}
}

func writeTypeAliases(b *strings.Builder, aliases []model.TypeAlias) {
	for _, a := range aliases {
		writeItemAttributes(b, a.Attributes)
		fmt.Fprintf(b, "%stype %s = %s;\n", visibilityPrefix(a.Visibility), a.Name, a.Type)
	}
	if len(aliases) > 0 {
		b.WriteByte('\n')
	}
}
