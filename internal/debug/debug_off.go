//go:build !debug

package debug

// Enabled is a global flag to fold blocks of code
const Enabled = false

// Printf is a no-op unless compiled with the "debug" tag
func Printf(f string, args ...interface{}) {}

// Dump is a no-op unless compiled with the "debug" tag
func Dump(v ...interface{}) {}
