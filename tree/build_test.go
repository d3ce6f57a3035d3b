package tree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRandom(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20

	for i := 0; i < rounds; i++ {
		seed := int64(seedrd.Uint64())
		size := 1 + i*7

		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			r := BuildRandom(size, seed)
			assert.Equal(t, size, r.Len())
			assert.Nil(t, r.Parent())

			seen := make(map[int]bool)
			r.PreOrder(func(n *Node[int]) bool {
				assert.False(t, seen[n.Value], "duplicate %d", n.Value)
				seen[n.Value] = true
				for _, c := range n.Children() {
					assert.Same(t, n, c.Parent())
					// children are always created after their parent
					assert.Greater(t, c.Value, n.Value)
				}
				return true
			})
			assert.Len(t, seen, size)

			// repeatable
			assert.Equal(t, r.Notation(), BuildRandom(size, seed).Notation())
		})
	}

	assert.Nil(t, BuildRandom(0, 1))
}

func TestBuildComplete(t *testing.T) {
	tests := []struct {
		branching, height int
		want              string
	}{
		{0, 3, "0"},
		{3, 0, "0"},
		{1, 2, "0{1{2}}"},
		{2, 2, "0{1{2,3},4{5,6}}"},
		{3, 1, "0{1,2,3}"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("b=%d/h=%d", tt.branching, tt.height), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildComplete(tt.branching, tt.height).Notation())
		})
	}

	assert.Panics(t, func() { BuildComplete(-1, 1) })
}
