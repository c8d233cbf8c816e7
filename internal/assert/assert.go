//go:build debug

package assert

// That panics with msg when cond is false. Only active in builds with the debug tag.
func That(cond bool, msg string) {
	if !cond {
		panic("assertion failed: " + msg)
	}
}
