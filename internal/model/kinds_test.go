package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementKindText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind StatementKind
		text string
	}{
		{Local, "local"},
		{Item, "item"},
		{Expr, "expr"},
		{MacroCall, "macro"},
		{Generic, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			got, err := tt.kind.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.text, string(got))

			var back StatementKind
			require.NoError(t, back.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.kind, back)
		})
	}
}

func TestUnknownKindText(t *testing.T) {
	t.Parallel()

	var s StructShape
	err := s.UnmarshalText([]byte("blob"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown struct shape kind "blob"`)

	_, err = ImportKind(7).MarshalText()
	require.Error(t, err)
	assert.Equal(t, "unknown(7)", ImportKind(7).String())
}

func TestImplBlockIsTraitImpl(t *testing.T) {
	t.Parallel()

	assert.False(t, ImplBlock{Target: "Point"}.IsTraitImpl())
	assert.True(t, ImplBlock{Target: "Point", Trait: "Display"}.IsTraitImpl())
}
