// Package testutils has assertions shared by tests in this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/treewalk/chops"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called, use DrainBlocking for that.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		chops.TryRecv(ch).Match(
			func(el T) {
				assert.Equal(t, datum, el)
			},
			func() {
				t.Errorf("channel closed early, expecting %v", datum)
			},
			func() {
				t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			},
		)
	}

	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Error("at the end of draining, channel was empty but unclosed")
		},
	)
}

// DrainBlocking expects to receive data in order from ch, then expects
// ch to be closed, waiting for a producer that is still running.
// Each receive, including the final one that observes the close, may
// wait at most timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining (blocking): expecting %v", data)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	recv := func() (T, bool, bool) {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(timeout)

		select {
		case el, ok := <-ch:
			return el, ok, false
		case <-timer.C:
			var zero T
			return zero, false, true
		}
	}

	for i, datum := range data {
		el, ok, timedOut := recv()
		switch {
		case timedOut:
			t.Errorf("timed out after %v, expecting i=%d %v", timeout, i, datum)
			return
		case !ok:
			t.Errorf("channel closed early, expecting i=%d %v", i, datum)
			return
		default:
			assert.Equal(t, datum, el)
		}
	}

	el, ok, timedOut := recv()
	switch {
	case timedOut:
		t.Errorf("channel not closed after %v", timeout)
	case ok:
		t.Errorf("channel should be closed, but received: %v", el)
	}
}
