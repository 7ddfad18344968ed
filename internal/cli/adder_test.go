package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdder(t *testing.T) {
	stdout, _, err := execute(t, "adder", "5", "9")
	require.NoError(t, err)
	assert.Contains(t, stdout, "5 + 9 + 0 = 14\nsum=1110 cout=0\n")
	assert.Contains(t, stdout, "(worst case 64)")
}

func TestAdderCarry(t *testing.T) {
	stdout, _, err := execute(t, "adder", "--bits", "8", "--cin", "0xff", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "255 + 1 + 1 = 257\nsum=00000001 cout=1\n")
}

func TestAdderJSON(t *testing.T) {
	for _, args := range [][]string{
		{"0", "0"},
		{"15", "1"},
		{"--cin", "7", "8"},
		{"--bits", "16", "40000", "30000"},
	} {
		stdout, _, err := execute(t, append([]string{"--format", "json", "adder"}, args...)...)
		require.NoError(t, err)
		var resp struct {
			Data AdderResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		r := resp.Data
		c := int64(0)
		if r.Cin {
			c = 1
		}
		total := r.A + r.B + c
		mask := int64(1)<<uint(r.Bits) - 1
		assert.Equal(t, total&mask, r.Sum, "%v", args)
		assert.Equal(t, total > mask, r.Cout, "%v", args)
		assert.LessOrEqual(t, r.Settle, r.WorstCase, "%v", args)
		assert.NotEmpty(t, r.Sim)
	}
}

func TestAdderProbe(t *testing.T) {
	_, stderr, err := execute(t, "adder", "--probe", "3", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "label=cout")
	assert.Contains(t, stderr, "label=sum[2]")
}

func TestAdderErrors(t *testing.T) {
	td := []struct {
		name string
		args []string
		msg  string
	}{
		{"range", []string{"adder", "16", "1"}, "out of range"},
		{"negative", []string{"adder", "--", "-1", "1"}, "out of range"},
		{"operand", []string{"adder", "x", "1"}, "invalid operand"},
		{"bits", []string{"adder", "--bits", "0", "1", "1"}, "invalid width"},
		{"format", []string{"--format", "xml", "adder", "1", "1"}, "invalid format"},
	}
	for _, d := range td {
		d := d
		t.Run(d.name, func(t *testing.T) {
			_, _, err := execute(t, d.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, err.Error(), d.msg)
		})
	}

	_, _, err := execute(t, "adder", "1")
	require.Error(t, err)
}
