package server

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadFromCommand(t *testing.T) {
	tests := []struct {
		name    string
		command []string
		want    string
		wantErr bool
	}{
		{"thread id", []string{"t-alice"}, "t-alice", false},
		{"no command", nil, "", true},
		{"blank id", []string{"  "}, "", true},
		{"extra args", []string{"t-alice", "t-bob"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := threadFromCommand(tt.command)
			if tt.wantErr {
				assert.ErrorContains(t, err, "usage")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourcesAreGofmtClean(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, file)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", file)
	}
}
