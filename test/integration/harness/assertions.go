package harness

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess fails the test unless the command exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "exit code\nstdout: %s\nstderr: %s", result.Stdout, result.Stderr)
}

// AssertFailure fails the test if the command exited 0
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected a failing exit code\nstdout: %s", result.Stdout)
}

// AssertStdoutContains checks stdout for a substring
func AssertStdoutContains(tb testing.TB, result CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, want, "stdout")
}

// AssertStdoutNotContains checks stdout lacks a substring
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unwanted string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unwanted, "stdout")
}

// AssertStderrContains checks stderr for a substring
func AssertStderrContains(tb testing.TB, result CommandResult, want string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, want, "stderr")
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout is not JSON: %s", result.Stdout)
}

// AssertJSONContains decodes stdout as an object and compares one key
func AssertJSONContains(tb testing.TB, result CommandResult, key string, want any) {
	tb.Helper()
	var obj map[string]any
	AssertValidJSON(tb, result, &obj)
	assert.Equal(tb, want, obj[key], "JSON key %q", key)
}

// AssertSelects runs `select` for a thread and checks the resolved bottom view
func AssertSelects(tb testing.TB, env *TestEnvironment, threadID, wantKind string, extraArgs ...string) {
	tb.Helper()
	result := RunCommand(tb, env, append([]string{"select", threadID}, extraArgs...)...)
	AssertSuccess(tb, result)
	assert.Equal(tb, wantKind, strings.TrimSpace(result.Stdout), "bottom view of %s", threadID)
}
