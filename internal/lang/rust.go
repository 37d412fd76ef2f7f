package lang

import (
	"github.com/smacker/go-tree-sitter/rust"
)

// Rust is the subject language of the codec.
var Rust = &Language{
	Name:       "rust",
	Extensions: []string{".rs"},
	lang:       rust.GetLanguage(),
}

func init() {
	Languages[Rust.Name] = Rust
}

// ItemNodeTypes are the tree-sitter node types that declare a nested item
// when they appear as a statement inside a block.
var ItemNodeTypes = map[string]struct{}{
	"const_item":               {},
	"macro_definition":         {},
	"mod_item":                 {},
	"foreign_mod_item":         {},
	"struct_item":              {},
	"union_item":               {},
	"enum_item":                {},
	"type_item":                {},
	"function_item":            {},
	"function_signature_item":  {},
	"impl_item":                {},
	"trait_item":               {},
	"associated_type":          {},
	"use_declaration":          {},
	"extern_crate_declaration": {},
	"static_item":              {},
}

// AtomicNodeTypes are rendered as one token even though tree-sitter gives
// them children.
var AtomicNodeTypes = map[string]struct{}{
	"string_literal":     {},
	"raw_string_literal": {},
	"char_literal":       {},
	"lifetime":           {},
	"label":              {},
}

// CommentNodeTypes are dropped from canonical statement text.
var CommentNodeTypes = map[string]struct{}{
	"line_comment":  {},
	"block_comment": {},
}
