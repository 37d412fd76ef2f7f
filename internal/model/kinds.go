package model

import "fmt"

// AttributeKind distinguishes outer `#[...]` from inner `#![...]` attributes.
type AttributeKind int

const (
	Outer AttributeKind = iota
	Inner
)

var attributeKindNames = []string{"outer", "inner"}

func (k AttributeKind) String() string { return kindName(attributeKindNames, int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k AttributeKind) MarshalText() ([]byte, error) {
	return marshalKind("attribute", attributeKindNames, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AttributeKind) UnmarshalText(text []byte) error {
	return unmarshalKind("attribute", attributeKindNames, text, (*int)(k))
}

// ImportKind distinguishes `use` paths from `extern crate` declarations.
type ImportKind int

const (
	Use ImportKind = iota
	ExternCrate
)

var importKindNames = []string{"use", "extern"}

func (k ImportKind) String() string { return kindName(importKindNames, int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k ImportKind) MarshalText() ([]byte, error) {
	return marshalKind("import", importKindNames, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ImportKind) UnmarshalText(text []byte) error {
	return unmarshalKind("import", importKindNames, text, (*int)(k))
}

// MacroKind tags how a macro is defined. Only declarative macros are extracted.
type MacroKind int

const (
	Declarative MacroKind = iota
)

var macroKindNames = []string{"declarative"}

func (k MacroKind) String() string { return kindName(macroKindNames, int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k MacroKind) MarshalText() ([]byte, error) {
	return marshalKind("macro", macroKindNames, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *MacroKind) UnmarshalText(text []byte) error {
	return unmarshalKind("macro", macroKindNames, text, (*int)(k))
}

// StructShape is the body form of a struct. The shapes are mutually exclusive.
type StructShape int

const (
	Record StructShape = iota
	Tuple
	Unit
)

var structShapeNames = []string{"record", "tuple", "unit"}

func (s StructShape) String() string { return kindName(structShapeNames, int(s)) }

// MarshalText implements encoding.TextMarshaler.
func (s StructShape) MarshalText() ([]byte, error) {
	return marshalKind("struct shape", structShapeNames, int(s))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StructShape) UnmarshalText(text []byte) error {
	return unmarshalKind("struct shape", structShapeNames, text, (*int)(s))
}

// StatementKind classifies a function-body statement.
type StatementKind int

const (
	// Local is a `let` binding.
	Local StatementKind = iota
	// Item is a nested item declaration (fn, struct, use, ...).
	Item
	// Expr is an expression statement or the trailing expression.
	Expr
	// MacroCall is a macro invocation in statement position.
	MacroCall
	// Generic is an unparsed body preserved verbatim.
	Generic
)

var statementKindNames = []string{"local", "item", "expr", "macro", "generic"}

func (k StatementKind) String() string { return kindName(statementKindNames, int(k)) }

// MarshalText implements encoding.TextMarshaler.
func (k StatementKind) MarshalText() ([]byte, error) {
	return marshalKind("statement", statementKindNames, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StatementKind) UnmarshalText(text []byte) error {
	return unmarshalKind("statement", statementKindNames, text, (*int)(k))
}

func kindName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func marshalKind(what string, names []string, v int) ([]byte, error) {
	if v < 0 || v >= len(names) {
		return nil, fmt.Errorf("invalid %s kind %d", what, v)
	}
	return []byte(names[v]), nil
}

func unmarshalKind(what string, names []string, text []byte, dst *int) error {
	for i, name := range names {
		if name == string(text) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s kind %q", what, text)
}
