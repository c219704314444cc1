//go:build !debug

package debug

import "testing"

const Enabled = false

func Log([]any, string, string, ...any) {}
func Assert(bool, string, ...any)       {}

// WithTesting is a no-op outside debug builds.
func WithTesting(testing.TB) func() { return func() {} }
