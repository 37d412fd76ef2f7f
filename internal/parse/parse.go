// Package parse decomposes function bodies into statements using tree-sitter.
package parse

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/ars/internal/lang"
	"github.com/phobologic/ars/internal/model"
)

// The body is parsed as the block of a synthetic zero-argument function.
// The newline before the closing brace ends any trailing line comment.
const (
	syntheticPrefix = "fn __ars_body() {\n"
	syntheticSuffix = "\n}\n"
)

// Outcome reports how a body was turned into statements.
type Outcome int

const (
	// Decomposed means the body parsed and each statement was classified.
	Decomposed Outcome = iota
	// Preserved means the body did not parse and is kept as one generic
	// statement holding the text verbatim.
	Preserved
)

func (o Outcome) String() string {
	if o == Preserved {
		return "preserved"
	}
	return "decomposed"
}

// Decomposition is the result of splitting one function body.
type Decomposition struct {
	Outcome    Outcome
	Statements []model.Statement
}

var parserPool = sync.Pool{
	New: func() any {
		return lang.Rust.NewParser()
	},
}

// Statements splits a function body (the text between its braces) into
// top-level statements. An empty body yields no statements. A body that fails
// to parse yields a single generic statement containing body unchanged.
func Statements(body string) Decomposition {
	if strings.TrimSpace(body) == "" {
		return Decomposition{Outcome: Decomposed}
	}

	stmts, ok := decompose(body)
	if !ok {
		return Decomposition{
			Outcome:    Preserved,
			Statements: []model.Statement{{Kind: model.Generic, Content: body}},
		}
	}
	return Decomposition{Outcome: Decomposed, Statements: stmts}
}

func decompose(body string) ([]model.Statement, bool) {
	source := []byte(syntheticPrefix + body + syntheticSuffix)

	parser := parserPool.Get().(*sitter.Parser)
	defer parserPool.Put(parser)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, false
	}

	block := syntheticBlock(root)
	if block == nil {
		return nil, false
	}
	return classify(block, source), true
}

// syntheticBlock returns the body block of the wrapper function, or nil when
// the body text escaped the wrapper (for example `} fn other() {`).
func syntheticBlock(root *sitter.Node) *sitter.Node {
	items := 0
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if _, ok := lang.CommentNodeTypes[root.NamedChild(i).Type()]; !ok {
			items++
		}
	}
	if items != 1 {
		return nil
	}

	q, err := lang.Rust.BodyQuery()
	if err != nil {
		return nil
	}
	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	var block *sitter.Node
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			if block != nil {
				return nil
			}
			block = c.Node
		}
	}
	return block
}

func classify(block *sitter.Node, source []byte) []model.Statement {
	var (
		stmts   []model.Statement
		pending []string
	)

	for i := 0; i < int(block.ChildCount()); i++ {
		child := block.Child(i)
		typ := child.Type()

		if _, ok := lang.CommentNodeTypes[typ]; ok {
			continue
		}

		switch typ {
		case "{", "}":
			continue
		case ";", "empty_statement":
			// A brace-delimited macro call may be followed by a detached `;`.
			if n := len(stmts); n > 0 && stmts[n-1].Kind == model.MacroCall &&
				!strings.HasSuffix(stmts[n-1].Content, ";") {
				stmts[n-1].Content += " ;"
			}
			continue
		case "attribute_item", "inner_attribute_item":
			pending = append(pending, render(child, source))
			continue
		}

		content := render(child, source)
		if len(pending) > 0 {
			content = strings.Join(append(pending, content), " ")
			pending = nil
		}
		stmts = append(stmts, model.Statement{Kind: kindOf(child), Content: content})
	}

	return stmts
}

func kindOf(node *sitter.Node) model.StatementKind {
	switch node.Type() {
	case "let_declaration":
		return model.Local
	case "macro_invocation":
		return model.MacroCall
	case "expression_statement":
		if node.NamedChildCount() == 1 && node.NamedChild(0).Type() == "macro_invocation" {
			return model.MacroCall
		}
		return model.Expr
	}
	if _, ok := lang.ItemNodeTypes[node.Type()]; ok {
		return model.Item
	}
	return model.Expr
}
