package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

var importRe = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `(use|extern\s+crate)\s+([^;]+);`)

func extractImports(s *source) []model.Import {
	var imports []model.Import
	for _, m := range importRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		imp := model.Import{
			Kind:       model.Use,
			Path:       collapseWhitespace(s.text[m[8]:m[9]]),
			Attributes: outerAttributes(group(s.text, m, 1)),
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
		}
		if strings.HasPrefix(s.text[m[6]:m[7]], "extern") {
			imp.Kind = model.ExternCrate
		}
		if !strings.Contains(imp.Path, "{") {
			if at := strings.LastIndex(imp.Path, " as "); at >= 0 {
				imp.Alias = strings.TrimSpace(imp.Path[at+len(" as "):])
			}
		}
		imp.Glob = strings.HasSuffix(imp.Path, "*")
		imports = append(imports, imp)
	}
	return imports
}

func writeImports(b *strings.Builder, imports []model.Import) {
	for _, imp := range imports {
		writeItemAttributes(b, imp.Attributes)
		b.WriteString(visibilityPrefix(imp.Visibility))
		if imp.Kind == model.ExternCrate {
			b.WriteString("extern crate ")
		} else {
			b.WriteString("use ")
		}
		b.WriteString(imp.Path)
		b.WriteString(";\n")
	}
	if len(imports) > 0 {
		b.WriteByte('\n')
	}
}

// group returns the text of capture group n of a submatch index slice, or ""
// when the group did not participate.
func group(src string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}
	return src[m[2*n]:m[2*n+1]]
}
