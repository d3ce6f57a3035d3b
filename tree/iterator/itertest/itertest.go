// Package itertest checks the behaviour every iterator.Sequence in
// this module must share, so each iterator's tests only need to say
// what it should produce.
package itertest

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/treewalk/tree/iterator"
)

// RunProperties runs one subtest per shared property against fresh
// sequences from newSeq. want is everything a fresh sequence should
// produce. If ordered is true the order must match too; otherwise
// only the set of items (each exactly once) is checked.
func RunProperties[N comparable](
	t *testing.T, newSeq func() iterator.Sequence[N], want []N, ordered bool,
) {
	t.Run("visits every node once", func(t *testing.T) {
		got := drain(t, newSeq(), len(want))
		if ordered {
			assert.Equal(t, want, got)
		} else {
			assert.ElementsMatch(t, want, got)
		}

		seen := make(map[N]int, len(got))
		for _, n := range got {
			seen[n]++
		}
		for n, c := range seen {
			assert.Equal(t, 1, c, "%v visited %d times", n, c)
		}
	})

	t.Run("visit count equals size", func(t *testing.T) {
		seq := newSeq()
		count := 0
		for seq.HasNext() {
			_, err := seq.Next()
			require.NoError(t, err)
			count++
			require.LessOrEqual(t, count, len(want), "sequence did not end")
		}
		assert.Equal(t, len(want), count)
	})

	t.Run("hasNext agrees with next", func(t *testing.T) {
		seq := newSeq()
		for i := 0; i < len(want); i++ {
			require.True(t, seq.HasNext(), "HasNext before item %d", i)
			// repeated calls must not consume anything
			require.True(t, seq.HasNext(), "second HasNext before item %d", i)
			_, err := seq.Next()
			require.NoError(t, err, "Next for item %d", i)
		}
		assert.False(t, seq.HasNext(), "after %d items", len(want))
		assert.False(t, seq.HasNext(), "again after %d items", len(want))
	})

	t.Run("next fails when exhausted", func(t *testing.T) {
		seq := newSeq()
		for i := 0; i < len(want); i++ {
			_, err := seq.Next()
			require.NoError(t, err)
		}
		for i := 0; i < 2; i++ {
			n, err := seq.Next()
			assert.True(t, errors.Is(err, iterator.ErrExhausted),
				"call %d past the end: %v", i+1, err)
			var zero N
			assert.Equal(t, zero, n)
		}
	})
}

// drain takes everything from seq, failing if it produces more than
// limit items.
func drain[N any](t *testing.T, seq iterator.Sequence[N], limit int) []N {
	t.Helper()
	var out []N
	for seq.HasNext() {
		n, err := seq.Next()
		require.NoError(t, err)
		out = append(out, n)
		require.LessOrEqual(t, len(out), limit,
			fmt.Sprintf("more than %d items", limit))
	}
	return out
}
