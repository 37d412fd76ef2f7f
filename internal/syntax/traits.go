package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

var (
	traitRe = regexp.MustCompile(linePrefix + attrsPattern + visPattern + `(unsafe\s+)?(auto\s+)?trait\s+(\w+)`)
	implRe  = regexp.MustCompile(linePrefix + attrsPattern + `(unsafe\s+)?impl\b`)
)

func extractTraits(s *source) []model.Trait {
	var traits []model.Trait
	for _, m := range traitRe.FindAllStringSubmatchIndex(s.text, -1) {
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
		traits = append(traits, model.Trait{
			Name:       group(s.text, m, 5),
			Generics:   h.generics,
			Bounds:     h.bounds,
			Where:      h.where,
			Unsafe:     group(s.text, m, 3) != "",
			Auto:       group(s.text, m, 4) != "",
			Visibility: strings.TrimSpace(group(s.text, m, 2)),
			Attributes: outerAttributes(group(s.text, m, 1)),
			Members:    bodyLines(s.text[h.open+1 : end]),
		})
	}
	return traits
}

// extractImpls finds impl blocks in two passes. The trait pass keeps headers
// with a top-level ` for `; the plain pass keeps the rest, so no block is
// reported by both.
func extractImpls(s *source) []model.ImplBlock {
	var traitImpls, plainImpls []model.ImplBlock
	for _, m := range implRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		block, ok := scanImpl(s.text, m[1])
		if !ok {
			continue
		}
		block.Unsafe = group(s.text, m, 2) != ""
		block.Attributes = outerAttributes(group(s.text, m, 1))
		if block.IsTraitImpl() {
			traitImpls = append(traitImpls, block)
		} else {
			plainImpls = append(plainImpls, block)
		}
	}
	return append(plainImpls, traitImpls...)
}

// scanImpl reads `<G> [Trait for] Target [where W] { ... }` starting just
// after the impl keyword.
func scanImpl(src string, i int) (model.ImplBlock, bool) {
	var block model.ImplBlock
	i = skipSpace(src, i)
	if i < len(src) && src[i] == '<' {
		end, ok := scanAngles(src, i)
		if !ok {
			return block, false
		}
		block.Generics = collapseWhitespace(src[i:end])
		i = end
	}

	open := scanClause(src, i, "{;")
	if open >= len(src) || src[open] != '{' {
		return block, false
	}
	end, ok := Balance(src, open+1)
	if !ok {
		return block, false
	}

	head, where := splitWhere(src[i:open])
	if f := keywordIndex(head, "for", true); f >= 0 {
		block.Trait = collapseWhitespace(head[:f])
		block.Target = collapseWhitespace(head[f+len("for"):])
		if block.Trait == "" {
			return block, false
		}
	} else {
		block.Target = collapseWhitespace(head)
	}
	if block.Target == "" {
		return block, false
	}
	block.Where = where
	block.Members = bodyLines(src[open+1 : end])
	return block, true
}

func writeTraits(b *strings.Builder, traits []model.Trait) {
	for _, t := range traits {
		writeItemAttributes(b, t.Attributes)
		b.WriteString(visibilityPrefix(t.Visibility))
		if t.Unsafe {
			b.WriteString("unsafe ")
		}
		if t.Auto {
			b.WriteString("auto ")
		}
		b.WriteString("trait ")
		b.WriteString(t.Name)
		b.WriteString(t.Generics)
		if t.Bounds != "" {
			b.WriteString(": ")
			b.WriteString(t.Bounds)
		}
		b.WriteString(whereSuffix(t.Where))
		writeLines(b, t.Members)
	}
}

func writeImpls(b *strings.Builder, impls []model.ImplBlock) {
	for _, impl := range impls {
		writeItemAttributes(b, impl.Attributes)
		if impl.Unsafe {
			b.WriteString("unsafe ")
		}
		b.WriteString("impl")
		b.WriteString(impl.Generics)
		b.WriteByte(' ')
		if impl.IsTraitImpl() {
			b.WriteString(impl.Trait)
			b.WriteString(" for ")
		}
		b.WriteString(impl.Target)
		b.WriteString(whereSuffix(impl.Where))
		writeLines(b, impl.Members)
	}
}

// writeLines writes a braced block with each line indented once.
func writeLines(b *strings.Builder, lines []string) {
	if len(lines) == 0 {
		b.WriteString(" {}\n\n")
		return
	}
	b.WriteString(" {\n")
	for _, line := range lines {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("}\n\n")
}
