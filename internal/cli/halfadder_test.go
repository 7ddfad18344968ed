package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/eventsim"
	"github.com/db47h/eventsim/circuit"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHalfAdderGolden(t *testing.T) {
	stdout, stderr, err := execute(t, "halfadder")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "halfadder", []byte(stdout))

	// one start marker per run
	assert.Equal(t, 3, strings.Count(stderr, `msg="simulation started"`))
	assert.NotContains(t, stderr, "level=DEBUG")
}

func TestHalfAdderVerbose(t *testing.T) {
	_, stderr, err := execute(t, "halfadder", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, `msg="simulation drained"`)
}

func TestHalfAdderJSON(t *testing.T) {
	id := uuid.MustParse("6a1f3c9e-2b7d-4e0a-9c55-1d2e3f405060")
	opts := &RootOptions{Format: "json", SimOptions: []eventsim.Option{eventsim.WithID(id)}}
	var buf bytes.Buffer
	cmd := NewHalfAdderCommand(opts)
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string          `json:"status"`
		Data   HalfAdderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, id.String(), resp.Data.Sim)
	assert.Equal(t, circuit.DefaultDelays(), resp.Data.Delays)
	assert.Equal(t, eventsim.Time(24), resp.Data.Time)
	require.Len(t, resp.Data.Trace, 10)
	assert.Equal(t, TraceEvent{Kind: "probe", Label: "carry", Time: 11, Value: true}, resp.Data.Trace[5])
	assert.Equal(t, TraceEvent{Kind: "set", Label: "in1", Time: 16, Value: false}, resp.Data.Trace[7])
}

func TestHalfAdderDelaysFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "delays.yaml")
	require.NoError(t, os.WriteFile(name, []byte("inverter_delay: 1\nand_gate_delay: 1\nor_gate_delay: 1\n"), 0644))

	stdout, _, err := execute(t, "--format", "json", "--delays", name, "halfadder")
	require.NoError(t, err)
	var resp struct {
		Data HalfAdderResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, circuit.Delays{Inverter: 1, And: 1, Or: 1}, resp.Data.Delays)
	last := resp.Data.Trace[len(resp.Data.Trace)-1]
	assert.Equal(t, "sum", last.Label)
	assert.True(t, last.Value)
}

func TestHalfAdderBadDelays(t *testing.T) {
	_, _, err := execute(t, "--delays", filepath.Join(t.TempDir(), "nope.yaml"), "halfadder")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load delays")
}
