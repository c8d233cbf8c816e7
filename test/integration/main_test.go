// Package integration_test runs the convobar binary end to end.
// TestMain compiles it once; every test gets its own CONVOBAR_HOME.
package integration_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/renato0307/convobar/test/integration/harness"
)

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	if _, err := harness.BuildBinary(); err != nil {
		fmt.Fprintf(os.Stderr, "building convobar: %v\n", err)
		return 1
	}
	defer harness.CleanupBinary()
	return m.Run()
}
