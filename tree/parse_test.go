package tree

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", "R", "R"},
		{"small", "R{A{A1,A2},B}", "R{A{A1,A2},B}"},
		{"spaces", "  R {\n\tA { A1 , A2 } ,\n B }  ", "R{A{A1,A2},B}"},
		{"empty braces", "R{A{},B}", "R{A,B}"},
		{"unicode", "根{枝,葉}", "根{枝,葉}"},
		{"deep", "a{b{c{d{e}}}}", "a{b{c{d{e}}}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Notation())
		})
	}
}

func TestParse_Links(t *testing.T) {
	r, err := Parse("R{A{A1,A2},B}")
	require.NoError(t, err)

	r.PreOrder(func(n *Node[string]) bool {
		for _, c := range n.Children() {
			assert.Same(t, n, c.Parent(), "parent of %s", c.Value)
		}
		return true
	})
	assert.Equal(t, 5, r.Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"empty", "", "offset 0: expected label, found end of input"},
		{"only spaces", "   ", "offset 3: expected label, found end of input"},
		{"leading brace", "{A}", "offset 0: expected label, found '{'"},
		{"unterminated", "R{A,B", "offset 5: unterminated children of \"R\""},
		{"missing child", "R{A,}", "offset 4: expected label, found '}'"},
		{"trailing", "R{A}B", "offset 4: unexpected \"B\" after tree"},
		{"two roots", "R,S", "offset 1: unexpected \",S\" after tree"},
		{"bad separator", "R{A B}", "offset 4: expected ',' or '}', found 'B'"},
		{"nul separator", "R{A \x00}", `offset 4: expected ',' or '}', found '\x00'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.in)
			assert.Nil(t, n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
