package syntax

import (
	"regexp"
	"strings"

	"github.com/phobologic/ars/internal/model"
)

var attributeRe = regexp.MustCompile(`#(!?)\[([^\]]*)\]`)

func extractAttributes(s *source) []model.Attribute {
	var attrs []model.Attribute
	for _, m := range attributeRe.FindAllStringSubmatchIndex(s.text, -1) {
		if !s.topLevel(m[0]) {
			continue
		}
		attr := model.Attribute{
			Kind:    model.Outer,
			Content: strings.TrimSpace(s.text[m[4]:m[5]]),
		}
		if m[3] > m[2] {
			attr.Kind = model.Inner
		} else {
			attr.Target = attributeTarget(s.text, m[1])
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

// attributeTarget names the item that follows offset i, skipping any further
// attributes, line comments, visibility and modifiers. Any item the codec does
// not extract yields model.TargetOther; "" means nothing follows.
func attributeTarget(src string, i int) string {
	for {
		i = skipSpace(src, i)
		if i >= len(src) {
			return ""
		}

		switch {
		case strings.HasPrefix(src[i:], "#["):
			end, ok := Balance(src, i+2)
			if !ok {
				return model.TargetOther
			}
			i = end + 1
			continue
		case strings.HasPrefix(src[i:], "//"):
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				return ""
			}
			i += nl + 1
			continue
		}

		word, next := readWord(src, i)
		switch word {
		case "pub":
			i = skipSpace(src, next)
			if i < len(src) && src[i] == '(' {
				end, ok := Balance(src, i+1)
				if !ok {
					return model.TargetOther
				}
				i = end + 1
			}
		case "unsafe", "async", "default", "auto":
			i = next
		case "extern":
			i = skipSpace(src, next)
			if i < len(src) && src[i] == '"' {
				q := strings.IndexByte(src[i+1:], '"')
				if q < 0 {
					return model.TargetOther
				}
				i += q + 2
			}
			if w, _ := readWord(src, skipSpace(src, i)); w == "crate" {
				return model.TargetExtern
			}
		case "const":
			switch w, _ := readWord(src, skipSpace(src, next)); w {
			case "fn", "unsafe", "async", "extern":
				i = next
			default:
				return model.TargetConst
			}
		case "fn":
			return model.TargetFunction
		case "struct":
			return model.TargetStruct
		case "enum":
			return model.TargetEnum
		case "trait":
			return model.TargetTrait
		case "impl":
			return model.TargetImpl
		case "mod":
			return model.TargetModule
		case "static":
			return model.TargetStatic
		case "type":
			return model.TargetType
		case "use":
			return model.TargetUse
		case "macro_rules":
			return model.TargetMacro
		default:
			return model.TargetOther
		}
	}
}

// writeAttributes renders the inner attributes. Outer attributes are written
// by the construct they precede; one that precedes nothing stays in the model
// only, since at the head of the file it would attach to the first construct.
func writeAttributes(b *strings.Builder, attrs []model.Attribute) {
	wrote := false
	for _, a := range attrs {
		if a.Kind != model.Inner {
			continue
		}
		b.WriteString("#![")
		b.WriteString(a.Content)
		b.WriteString("]\n")
		wrote = true
	}
	if wrote {
		b.WriteByte('\n')
	}
}

func writeItemAttributes(b *strings.Builder, attrs []string) {
	for _, a := range attrs {
		b.WriteString(a)
		b.WriteByte('\n')
	}
}

func visibilityPrefix(vis string) string {
	if vis == "" {
		return ""
	}
	return vis + " "
}
