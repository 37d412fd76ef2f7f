package parse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/ars/internal/model"
)

func TestStatementsSimpleLocal(t *testing.T) {
	t.Parallel()

	d := Statements("let x = 5;")
	assert.Equal(t, Decomposed, d.Outcome)
	require.Len(t, d.Statements, 1)
	assert.Equal(t, model.Local, d.Statements[0].Kind)
	assert.Equal(t, "let x = 5 ;", d.Statements[0].Content)
}

func TestStatementsMixed(t *testing.T) {
	t.Parallel()

	d := Statements(`
            let a = 1;
            println!("Hello");
            let b = a + 2;
        `)
	require.Equal(t, Decomposed, d.Outcome)
	assert.Equal(t, []model.Statement{
		{Kind: model.Local, Content: "let a = 1 ;"},
		{Kind: model.MacroCall, Content: `println ! ("Hello") ;`},
		{Kind: model.Local, Content: "let b = a + 2 ;"},
	}, d.Statements)
}

func TestStatementsNestedBlocksAndTail(t *testing.T) {
	t.Parallel()

	d := Statements("let x = 5;\n    if x > 0 {\n        return 1;\n    }\n    x + 1")
	require.Equal(t, Decomposed, d.Outcome)
	assert.Equal(t, []model.Statement{
		{Kind: model.Local, Content: "let x = 5 ;"},
		{Kind: model.Expr, Content: "if x > 0 { return 1 ; }"},
		{Kind: model.Expr, Content: "x + 1"},
	}, d.Statements)
}

func TestStatementsItemsAndCalls(t *testing.T) {
	t.Parallel()

	d := Statements(`
		use std::fmt;
		fn helper(v: &[i32]) -> i32 { v.len() as i32 }
		let total = helper(&[1, 2]);
		holder.add(10);
	`)
	require.Equal(t, Decomposed, d.Outcome)
	require.Len(t, d.Statements, 4)
	assert.Equal(t, model.Item, d.Statements[0].Kind)
	assert.Equal(t, "use std :: fmt ;", d.Statements[0].Content)
	assert.Equal(t, model.Item, d.Statements[1].Kind)
	assert.Equal(t, model.Local, d.Statements[2].Kind)
	assert.Equal(t, "let total = helper (& [1 , 2]) ;", d.Statements[2].Content)
	assert.Equal(t, model.Expr, d.Statements[3].Kind)
	assert.Equal(t, "holder . add (10) ;", d.Statements[3].Content)
}

func TestStatementsDropsComments(t *testing.T) {
	t.Parallel()

	d := Statements("// leading\nlet s = \"a // not a comment\"; /* trailing */\ns")
	require.Equal(t, Decomposed, d.Outcome)
	assert.Equal(t, []model.Statement{
		{Kind: model.Local, Content: `let s = "a // not a comment" ;`},
		{Kind: model.Expr, Content: "s"},
	}, d.Statements)
}

func TestStatementsEmpty(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "   \n\t"} {
		d := Statements(body)
		assert.Equal(t, Decomposed, d.Outcome)
		assert.Empty(t, d.Statements)
	}
}

func TestStatementsUnparsableIsPreserved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing value", "let x = ;"},
		{"stray tokens", "let y = 1;\n@@@ nonsense"},
		{"escapes wrapper", "x } fn other() { y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Statements(tt.body)
			assert.Equal(t, Preserved, d.Outcome)
			require.Len(t, d.Statements, 1)
			assert.Equal(t, model.Generic, d.Statements[0].Kind)
			assert.Equal(t, tt.body, d.Statements[0].Content)
		})
	}
}

func TestStatementsIdempotentForCanonicalText(t *testing.T) {
	t.Parallel()

	d := Statements("let mut v = Vec::new();\nv.push(1);\nlet n = v.len();\nn * 2")
	require.Equal(t, Decomposed, d.Outcome)

	for _, stmt := range d.Statements {
		if stmt.Kind != model.Local && stmt.Kind != model.Expr {
			continue
		}
		again := Statements(stmt.Content)
		require.Equal(t, Decomposed, again.Outcome, "re-decomposing %q", stmt.Content)
		require.Len(t, again.Statements, 1)
		assert.Equal(t, stmt.Kind, again.Statements[0].Kind, "kind of %q", stmt.Content)
		assert.Equal(t, stmt.Content, again.Statements[0].Content)
	}
}

func TestStatementsConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				d := Statements("let a = 1;\na")
				assert.Len(t, d.Statements, 2)
			}
		}()
	}
	wg.Wait()
}

func TestJoinTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		toks []string
		want string
	}{
		{"call", []string{"f", "(", "a", ",", "b", ")"}, "f (a , b)"},
		{"index", []string{"v", "[", "0", "]"}, "v [0]"},
		{"empty brace", []string{"{", "}"}, "{ }"},
		{"brace", []string{"{", "x", "}"}, "{ x }"},
		{"empty parens", []string{"f", "(", ")"}, "f ()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, joinTokens(tt.toks))
		})
	}
}
