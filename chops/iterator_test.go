package chops

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

var _ Iterator[string] = (*sliter)(nil)

type sliter struct {
	s []string
	i int
}

func newSliter(s ...string) *sliter {
	return &sliter{s: s, i: -1}
}

func (sl *sliter) Next() bool {
	if sl == nil {
		return false
	}
	sl.i++
	return sl.i < len(sl.s)
}

func (sl *sliter) Item() string {
	return sl.s[sl.i]
}

// recvAll receives until ch is closed, failing the test if that takes
// longer than timeout.
func recvAll(t *testing.T, ch <-chan string, timeout time.Duration) []string {
	t.Helper()
	var got []string
	deadline := time.After(timeout)
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, s)
		case <-deadline:
			t.Fatalf("channel not closed after %v, got %v", timeout, got)
		}
	}
}

func TestCoIterate_Nil(t *testing.T) {
	// This tests that untyped nil can be handled
	co := CoIterate[string](nil)
	_, ok := <-co.Items()
	assert.False(t, ok)
}

func TestCoIterate(t *testing.T) {
	tests := []struct {
		name string
		sl   *sliter
		do   func(t *testing.T, co CoIterator[string])
	}{
		{
			name: "typed nil",
			do: func(t *testing.T, co CoIterator[string]) {
				assert.Empty(t, recvAll(t, co.Items(), time.Second))
			},
		},
		{
			name: "one",
			sl:   newSliter("R"),
			do: func(t *testing.T, co CoIterator[string]) {
				assert.Equal(t, []string{"R"}, recvAll(t, co.Items(), time.Second))
			},
		},
		{
			name: "stopping",
			sl:   newSliter("R", "A", "B"),
			do: func(t *testing.T, co CoIterator[string]) {
				assert.Equal(t, "R", <-co.Items())
				co.Stop()
				// the goroutine may win a few more sends before seeing stop
				assert.LessOrEqual(t, len(recvAll(t, co.Items(), time.Second)), 2)
			},
		},
		{
			name: "usage",
			sl:   newSliter("R", "A", "B"),
			do: func(t *testing.T, co CoIterator[string]) {
				var a []string
				for s := range co.Items() {
					a = append(a, s)
					if s == "R" {
						co.Stop()
						break
					}
				}
				assert.Equal(t, []string{"R"}, a)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.do(t, CoIterate[string](tt.sl))
			goleak.VerifyNone(t)
		})
	}
}

func TestCoIterate_Concurrent(t *testing.T) {
	sl := newSliter()
	for i := 0; i < 100; i++ {
		sl.s = append(sl.s, string(rune('a'+i%26)))
	}
	co := CoIterate[string](sl)

	barrier := make(chan struct{})
	var once sync.Once
	var wg sync.WaitGroup
	var mu sync.Mutex
	received := 0
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			for range co.Items() {
				mu.Lock()
				received++
				if received > 50 {
					once.Do(co.Stop)
				}
				mu.Unlock()
			}
		}()
	}

	close(barrier)
	wg.Wait()

	assert.Greater(t, received, 50)
	assert.LessOrEqual(t, received, 100)
	goleak.VerifyNone(t)
}
