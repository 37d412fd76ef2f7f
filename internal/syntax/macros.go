package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

var macroRe = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `macro_rules!\s*(\w+)\s*\{`)

func extractMacros(s *source) []model.Macro {
	var macros []model.Macro
	for _, m := range macroRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		end, ok := Balance(s.text, m[1])
		if !ok {
			continue
		}
		macros = append(macros, model.Macro{
			Name:       group(s.text, m, 3),
			Body:       strings.TrimSpace(s.text[m[1]:end]),
			Attributes: outerAttributes(group(s.text, m, 1)),
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Kind:       model.Declarative,
		})
	}
	return macros
}

func writeMacros(b *strings.Builder, macros []model.Macro) {
	for _, mac := range macros {
		writeItemAttributes(b, mac.Attributes)
		b.WriteString(visibilityPrefix(mac.Visibility))
		b.WriteString("macro_rules! ")
		b.WriteString(mac.Name)
		writeBlock(b, mac.Body)
	}
}

// writeBlock writes ` {`, the body verbatim on its own lines and `}`,
// followed by a blank line.
func writeBlock(b *strings.Builder, body string) {
	if body == "" {
		b.WriteString(" {}\n\n")
		return
	}
	b.WriteString(" {\n")
	b.WriteString(body)
	b.WriteString("\n}\n\n")
}
