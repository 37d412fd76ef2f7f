package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

var moduleRe = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `mod\s+(\w+)\s*([{;])`)

// extractModules records `mod name;` declarations and inline modules. An
// inline body is kept verbatim; its contents are not extracted.
func extractModules(s *source) []model.Module {
	var mods []model.Module
	for _, m := range moduleRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		mod := model.Module{
			Name:       group(s.text, m, 3),
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
		}
		if group(s.text, m, 4) == "{" {
			end, ok := Balance(s.text, m[1])
			if !ok {
				continue
			}
			mod.Inline = true
			mod.Body = strings.TrimSpace(s.text[m[1]:end])
		}
		mods = append(mods, mod)
	}
	return mods
}

func writeModules(b *strings.Builder, mods []model.Module) {
	for _, mod := range mods {
		writeItemAttributes(b, mod.Attributes)
		b.WriteString(visibilityPrefix(mod.Visibility))
		b.WriteString("mod ")
		b.WriteString(mod.Name)
		if !mod.Inline {
			b.WriteString(";\n\n")
			continue
		}
		writeBlock(b, mod.Body)
	}
}
