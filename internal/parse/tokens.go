package parse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/ars/internal/lang"
)

// render returns the canonical token text of a node: leaf tokens separated by
// single spaces, with no space after `(` or `[` and none before `)` or `]`.
// Comments are dropped.
func render(node *sitter.Node, source []byte) string {
	var toks []string
	collectTokens(node, source, &toks)
	return joinTokens(toks)
}

func collectTokens(node *sitter.Node, source []byte, toks *[]string) {
	typ := node.Type()
	if _, ok := lang.CommentNodeTypes[typ]; ok {
		return
	}

	_, atomic := lang.AtomicNodeTypes[typ]
	if atomic || node.ChildCount() == 0 {
		if text := lang.NodeText(node, source); text != "" {
			*toks = append(*toks, text)
		}
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectTokens(node.Child(i), source, toks)
	}
}

func joinTokens(toks []string) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			prev := toks[i-1]
			if prev != "(" && prev != "[" && tok != ")" && tok != "]" {
				b.WriteByte(' ')
			}
		}
		b.WriteString(tok)
	}
	return b.String()
}
