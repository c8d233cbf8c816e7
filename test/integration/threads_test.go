package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/convobar/test/integration/harness"
)

func addThread(t *testing.T, env *harness.TestEnvironment, args ...string) {
	t.Helper()
	result := harness.RunCommand(t, env, append([]string{"threads", "add"}, args...)...)
	harness.AssertSuccess(t, result)
}

func TestThreads(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "list with no threads shows hint",
			args:         []string{"threads", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No threads")
			},
		},
		{
			name:         "add with explicit id",
			args:         []string{"threads", "add", "Alice", "--id=t-alice"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "added with ID t-alice")
				assert.FileExists(t, env.DBPath())
			},
		},
		{
			name: "duplicate id fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addThread(t, env, "Alice", "--id=t-alice")
			},
			args:         []string{"threads", "add", "Bob", "--id=t-alice"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "already exists")
			},
		},
		{
			name: "list with kinds resolves bottom views",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addThread(t, env, "Plain", "--id=t-plain")
				addThread(t, env, "Stranger", "--id=t-request", "--request")
				addThread(t, env, "Club", "--id=t-member", "--group", "--pending")
				addThread(t, env, "Legacy", "--id=t-migration", "--group", "--migration")
			},
			args:         []string{"threads", "list", "--kinds"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Bottom View")
				harness.AssertStdoutContains(t, result, "inputToolbar")
				harness.AssertStdoutContains(t, result, "messageRequest(contact)")
				harness.AssertStdoutContains(t, result, "memberRequest")
				harness.AssertStdoutContains(t, result, "blockingMigration")
			},
		},
		{
			name: "view as json",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addThread(t, env, "Alice", "--id=t-alice", "--blocked")
			},
			args:         []string{"threads", "view", "t-alice", "--format=json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "Name", "Alice")
				harness.AssertJSONContains(t, result, "IsBlocked", true)
			},
		},
		{
			name:         "view unknown thread fails",
			args:         []string{"threads", "view", "missing"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "not found")
			},
		},
		{
			name: "set without flags fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addThread(t, env, "Alice", "--id=t-alice")
			},
			args:         []string{"threads", "set", "t-alice"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "nothing to set")
			},
		},
		{
			name: "set with a bad value fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addThread(t, env, "Alice", "--id=t-alice")
			},
			args:         []string{"threads", "set", "t-alice", "--blocked=maybe"},
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "want true or false")
			},
		},
		{
			name: "forced delete removes the thread",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				addThread(t, env, "Alice", "--id=t-alice")
			},
			args:         []string{"threads", "del", "t-alice", "--force"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "deleted successfully")
				list := harness.RunCommand(t, env, "threads", "list")
				harness.AssertStdoutNotContains(t, list, "t-alice")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			require.Equal(t, tt.wantExitCode, result.ExitCode,
				"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestThreadsSet_ChangesSelectedView(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addThread(t, env, "Alice", "--id=t-alice", "--request")

	harness.AssertSelects(t, env, "t-alice", "messageRequest(contact)")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "threads", "set", "t-alice", "--blocked=true"))
	harness.AssertSelects(t, env, "t-alice", "messageRequest(blocked-contact)")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "threads", "set", "t-alice", "--request=false"))
	harness.AssertSelects(t, env, "t-alice", "inputToolbar")
}

func TestSelect_Priority(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addThread(t, env, "Everything", "--id=t-all", "--group", "--request", "--pending", "--migration")
	addThread(t, env, "Member", "--id=t-member", "--group", "--pending", "--migration")
	addThread(t, env, "Plain", "--id=t-plain")

	tests := []struct {
		name     string
		threadID string
		args     []string
		want     string
	}{
		{"request outranks membership and migration", "t-all", nil, "messageRequest(group-invite)"},
		{"membership outranks migration", "t-member", nil, "memberRequest"},
		{"request outranks search mode", "t-all", []string{"--mode=search"}, "messageRequest(group-invite)"},
		{"normal mode shows toolbar", "t-plain", nil, "inputToolbar"},
		{"search mode", "t-plain", []string{"--mode=search"}, "search"},
		{"selection mode", "t-plain", []string{"--mode=selection"}, "selection"},
		{"nothing before appearance", "t-all", []string{"--not-visible"}, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			harness.AssertSelects(t, env, tt.threadID, tt.want, tt.args...)
		})
	}
}

func TestSelect_JSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	addThread(t, env, "Legacy", "--id=t-legacy", "--migration")

	result := harness.RunCommand(t, env, "select", "t-legacy", "--format=json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "kind", "blockingMigration")
}
