// Package syntax extracts top-level Rust constructs into a model.File and
// reconstructs source text from one.
//
// Constructs are located with line-anchored regular expressions and their
// bodies with Balance; only constructs that start outside every delimiter
// pair are extracted. Unmatched or unclosed constructs are silently absent.
// Function bodies are decomposed by package parse.
package syntax

import (
	"strings"

	"github.com/phobologic/ars/internal/model"
)

// category pairs one model.File field with its extractor and reconstructor.
type category struct {
	name    string
	extract func(s *source, f *model.File)
	write   func(b *strings.Builder, f *model.File)
	count   func(f *model.File) int
}

// categories is the canonical order shared by Extract and Reconstruct.
var categories = []category{
	{
		name:    "attributes",
		extract: func(s *source, f *model.File) { f.Attributes = extractAttributes(s) },
		write:   func(b *strings.Builder, f *model.File) { writeAttributes(b, f.Attributes) },
		count:   func(f *model.File) int { return len(f.Attributes) },
	},
	{
		name:    "imports",
		extract: func(s *source, f *model.File) { f.Imports = extractImports(s) },
		write:   func(b *strings.Builder, f *model.File) { writeImports(b, f.Imports) },
		count:   func(f *model.File) int { return len(f.Imports) },
	},
	{
		name:    "constants",
		extract: func(s *source, f *model.File) { f.Constants = extractConstants(s) },
		write:   func(b *strings.Builder, f *model.File) { writeConstants(b, f.Constants) },
		count:   func(f *model.File) int { return len(f.Constants) },
	},
	{
		name:    "statics",
		extract: func(s *source, f *model.File) { f.Statics = extractStatics(s) },
		write:   func(b *strings.Builder, f *model.File) { writeStatics(b, f.Statics) },
		count:   func(f *model.File) int { return len(f.Statics) },
	},
	{
		name:    "type_aliases",
		extract: func(s *source, f *model.File) { f.TypeAliases = extractTypeAliases(s) },
		write:   func(b *strings.Builder, f *model.File) { writeTypeAliases(b, f.TypeAliases) },
		count:   func(f *model.File) int { return len(f.TypeAliases) },
	},
	{
		name:    "macros",
		extract: func(s *source, f *model.File) { f.Macros = extractMacros(s) },
		write:   func(b *strings.Builder, f *model.File) { writeMacros(b, f.Macros) },
		count:   func(f *model.File) int { return len(f.Macros) },
	},
	{
		name:    "structs",
		extract: func(s *source, f *model.File) { f.Structs = extractStructs(s) },
		write:   func(b *strings.Builder, f *model.File) { writeStructs(b, f.Structs) },
		count:   func(f *model.File) int { return len(f.Structs) },
	},
	{
		name:    "enums",
		extract: func(s *source, f *model.File) { f.Enums = extractEnums(s) },
		write:   func(b *strings.Builder, f *model.File) { writeEnums(b, f.Enums) },
		count:   func(f *model.File) int { return len(f.Enums) },
	},
	{
		name:    "traits",
		extract: func(s *source, f *model.File) { f.Traits = extractTraits(s) },
		write:   func(b *strings.Builder, f *model.File) { writeTraits(b, f.Traits) },
		count:   func(f *model.File) int { return len(f.Traits) },
	},
	{
		name:    "impl_blocks",
		extract: func(s *source, f *model.File) { f.ImplBlocks = extractImpls(s) },
		write:   func(b *strings.Builder, f *model.File) { writeImpls(b, f.ImplBlocks) },
		count:   func(f *model.File) int { return len(f.ImplBlocks) },
	},
	{
		name:    "modules",
		extract: func(s *source, f *model.File) { f.Modules = extractModules(s) },
		write:   func(b *strings.Builder, f *model.File) { writeModules(b, f.Modules) },
		count:   func(f *model.File) int { return len(f.Modules) },
	},
	{
		name:    "functions",
		extract: func(s *source, f *model.File) { f.Functions = extractFunctions(s) },
		write:   func(b *strings.Builder, f *model.File) { writeFunctions(b, f.Functions) },
		count:   func(f *model.File) int { return len(f.Functions) },
	},
}

// Extract runs every category extractor over text and assembles the results.
func Extract(text string) *model.File {
	s := newSource(text)
	f := &model.File{}
	for _, c := range categories {
		c.extract(s, f)
	}
	return f
}

// Reconstruct renders f as source text, category by category in canonical
// order. The result ends with a single newline, or is empty for an empty file.
func Reconstruct(f *model.File) string {
	var b strings.Builder
	for _, c := range categories {
		c.write(&b, f)
	}
	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

// CategoryCount is the number of constructs of one category in a file.
type CategoryCount struct {
	Name  string
	Count int
}

// Counts reports the construct count of every category in canonical order.
func Counts(f *model.File) []CategoryCount {
	counts := make([]CategoryCount, len(categories))
	for i, c := range categories {
		counts[i] = CategoryCount{Name: c.name, Count: c.count(f)}
	}
	return counts
}
