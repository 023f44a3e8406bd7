package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const blinkerInput = "3 1 0 1 0\n0 0 1 2\n"

func TestRootCmdBlinker(t *testing.T) {
	out, err := execute(t, blinkerInput)
	require.NoError(t, err)
	assert.Equal(t, "3\n.....\n..0..\n..0..\n..0..\n.....\n", out)
}

func TestRootCmdGenerationsOverride(t *testing.T) {
	out, err := execute(t, blinkerInput, "--generations", "2", "--parallel=false")
	require.NoError(t, err)
	assert.Equal(t, "3\n.....\n.....\n.000.\n.....\n.....\n", out)
}

func TestRootCmdJSON(t *testing.T) {
	out, err := execute(t, blinkerInput, "--json", "--detect-cycles=false")
	require.NoError(t, err)

	var decoded struct {
		AliveCount int        `json:"alive_count"`
		Window     [5][5]bool `json:"window"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded.AliveCount)
	assert.True(t, decoded.Window[1][2])
}

func TestRootCmdInputFileAndConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tromino.txt")
	require.NoError(t, os.WriteFile(input, []byte("3 1 0 0 0\n0 0 1\n1 0\n"), 0o600))
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("revival_policy: classic\n"), 0o600))

	out, err := execute(t, "", "--input", input, "--config", config)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "4\n"), "got %q", out)

	out, err = execute(t, "", "--input", input, "--config", config, "--policy", "discovery")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3\n"), "got %q", out)
}

func TestRootCmdEmptyInput(t *testing.T) {
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootCmdErrors(t *testing.T) {
	_, err := execute(t, "3 x 0 0 0\n")
	assert.ErrorContains(t, err, "invalid input")

	_, err = execute(t, blinkerInput, "--policy", "nope")
	assert.ErrorContains(t, err, "unknown revival policy")

	_, err = execute(t, "", "--input", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to open input")
}
