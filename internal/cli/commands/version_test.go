package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVersion(t *testing.T, info BuildInfo, args ...string) string {
	t.Helper()
	cmd := NewVersionCommand(info)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestVersionCommand_Text(t *testing.T) {
	out := runVersion(t, BuildInfo{Version: "0.1.0", Commit: "abc123", BuildDate: "2026-01-02"})

	assert.Contains(t, out, "writegood v0.1.0\n")
	assert.Contains(t, out, "commit abc123, built 2026-01-02 with go")
	assert.Contains(t, out, "9 prose rules registered")
}

func TestVersionCommand_JSON(t *testing.T) {
	out := runVersion(t, BuildInfo{Version: "dev", Commit: "unknown", BuildDate: "unknown"}, "--format", "json")

	var got BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "dev", got.Version)
	assert.Equal(t, lint.Count(), got.Rules)
	assert.NotEmpty(t, got.GoVersion)
}

func TestVersionCommand_UnknownFormat(t *testing.T) {
	cmd := NewVersionCommand(BuildInfo{Version: "dev"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand(BuildInfo{Version: "test"})

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
