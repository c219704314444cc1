//go:build debug

package debug

import (
	"testing"

	"github.com/timandy/routine"
)

var tls = routine.NewThreadLocal[testing.TB]()

// WithTesting sets a testing.TB for debugging.
//
// This causes t.Log to be used to print debug traces instead of stderr for
// as long as the returned restore func has not been called.
func WithTesting(t testing.TB) func() {
	t.Helper()

	prev := tls.Get()
	tls.Set(t)

	return func() {
		tls.Set(prev)
	}
}
