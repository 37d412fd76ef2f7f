// Package model defines the intermediate representation of one Rust source file.
package model

// Attribute target contexts. An attribute without a target is rendered on its
// own; a targeted one is rendered by the construct it precedes. TargetOther
// marks an item that is not extracted, so its attributes are not rendered.
const (
	TargetFunction = "fn"
	TargetStruct   = "struct"
	TargetEnum     = "enum"
	TargetTrait    = "trait"
	TargetImpl     = "impl"
	TargetModule   = "mod"
	TargetConst    = "const"
	TargetStatic   = "static"
	TargetType     = "type"
	TargetUse      = "use"
	TargetExtern   = "extern"
	TargetMacro    = "macro"
	TargetOther    = "other"
)

// Attribute is a `#[...]` or `#![...]` annotation found at the top level.
type Attribute struct {
	Target  string        `yaml:"target,omitempty"`
	Kind    AttributeKind `yaml:"kind"`
	Content string        `yaml:"content"`
}

// Import is a `use` declaration or an `extern crate` declaration.
type Import struct {
	Kind       ImportKind `yaml:"kind"`
	Path       string     `yaml:"path"`
	Alias      string     `yaml:"alias,omitempty"`
	Glob       bool       `yaml:"glob,omitempty"`
	Visibility string     `yaml:"visibility,omitempty"`
	Attributes []string   `yaml:"attributes,omitempty"`
}

// Constant is a `const NAME: Type = value;` item.
type Constant struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Value      string   `yaml:"value"`
	Visibility string   `yaml:"visibility,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
}

// Static is a `static [mut] NAME: Type = value;` item.
type Static struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Value      string   `yaml:"value"`
	Mutable    bool     `yaml:"mutable,omitempty"`
	Visibility string   `yaml:"visibility,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
}

// TypeAlias is a `type Name<G> = Type;` item. Name carries its own generics.
type TypeAlias struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Visibility string   `yaml:"visibility,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
}

// Macro is a `macro_rules!` definition. Body is opaque.
type Macro struct {
	Name       string    `yaml:"name"`
	Body       string    `yaml:"body"`
	Attributes []string  `yaml:"attributes,omitempty"`
	Visibility string    `yaml:"visibility,omitempty"`
	Kind       MacroKind `yaml:"kind"`
}

// Struct is a struct item of any shape. Members is empty for unit structs.
type Struct struct {
	Name       string      `yaml:"name"`
	Generics   string      `yaml:"generics,omitempty"`
	Where      string      `yaml:"where,omitempty"`
	Visibility string      `yaml:"visibility,omitempty"`
	Attributes []string    `yaml:"attributes,omitempty"`
	Shape      StructShape `yaml:"shape"`
	Members    []string    `yaml:"members,omitempty"`
}

// Enum is an enum item; each variant is kept as raw text.
type Enum struct {
	Name       string   `yaml:"name"`
	Generics   string   `yaml:"generics,omitempty"`
	Where      string   `yaml:"where,omitempty"`
	Visibility string   `yaml:"visibility,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
	Variants   []string `yaml:"variants,omitempty"`
}

// Trait is a trait item. Members are the trimmed lines of its body.
type Trait struct {
	Name       string   `yaml:"name"`
	Generics   string   `yaml:"generics,omitempty"`
	Bounds     string   `yaml:"bounds,omitempty"`
	Where      string   `yaml:"where,omitempty"`
	Unsafe     bool     `yaml:"unsafe,omitempty"`
	Auto       bool     `yaml:"auto,omitempty"`
	Visibility string   `yaml:"visibility,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
	Members    []string `yaml:"members,omitempty"`
}

// ImplBlock is an inherent (`impl T`) or trait (`impl Tr for T`) block.
// Visibility is always empty; Rust impl blocks carry none.
type ImplBlock struct {
	Target     string   `yaml:"target"`
	Trait      string   `yaml:"trait,omitempty"`
	Generics   string   `yaml:"generics,omitempty"`
	Where      string   `yaml:"where,omitempty"`
	Unsafe     bool     `yaml:"unsafe,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
	Members    []string `yaml:"members,omitempty"`
	Visibility string   `yaml:"visibility,omitempty"`
}

// IsTraitImpl reports whether the block implements a trait.
func (b ImplBlock) IsTraitImpl() bool { return b.Trait != "" }

// Module is a `mod name;` declaration or an inline `mod name { ... }`.
type Module struct {
	Name       string   `yaml:"name"`
	Visibility string   `yaml:"visibility,omitempty"`
	Attributes []string `yaml:"attributes,omitempty"`
	Inline     bool     `yaml:"inline"`
	Body       string   `yaml:"body,omitempty"`
}

// Function is a function with a body, decomposed into statements.
type Function struct {
	Signature  string      `yaml:"signature"`
	Statements []Statement `yaml:"statements,omitempty"`
}

// Statement is one top-level statement of a function body.
type Statement struct {
	Kind    StatementKind `yaml:"kind"`
	Content string        `yaml:"content"`
}

// File is the extracted form of one source file. Field order is the
// canonical category order.
type File struct {
	Attributes  []Attribute `yaml:"attributes,omitempty"`
	Imports     []Import    `yaml:"imports,omitempty"`
	Constants   []Constant  `yaml:"constants,omitempty"`
	Statics     []Static    `yaml:"statics,omitempty"`
	TypeAliases []TypeAlias `yaml:"type_aliases,omitempty"`
	Macros      []Macro     `yaml:"macros,omitempty"`
	Structs     []Struct    `yaml:"structs,omitempty"`
	Enums       []Enum      `yaml:"enums,omitempty"`
	Traits      []Trait     `yaml:"traits,omitempty"`
	ImplBlocks  []ImplBlock `yaml:"impl_blocks,omitempty"`
	Modules     []Module    `yaml:"modules,omitempty"`
	Functions   []Function  `yaml:"functions,omitempty"`
}
