//go:build !debug

// Package debug provides assertions that compile to no-ops unless the debug
// build tag is set.
//
// Not idiomatic Go, but cheap enough to leave in low-level register access
// paths.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics if b is false.
func Assert(b bool, message string) {}

// AssertErrNil panics if err is not nil.
func AssertErrNil(err error) {}
