package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execPadder(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(newPadCommand("padder"), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestPadder_Pads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02, 0x03}, 0644))

	code, stdout, stderr := execPadder("rom", path, "5")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x00, 0x00}, got)
}

func TestPadder_NoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.bin")
	require.NoError(t, os.WriteFile(path, []byte("abcd"), 0644))

	code, _, stderr := execPadder("rom", path, "4")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), got)
}

func TestPadder_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.bin")
	original := []byte{1, 2, 3, 4, 5}
	require.NoError(t, os.WriteFile(path, original, 0644))

	code, stdout, stderr := execPadder("rom", path, "3")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: "+path+" is larger than 3\n", stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestPadder_UsageErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.bin")
	require.NoError(t, os.WriteFile(path, []byte{1}, 0644))

	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "no args", args: nil},
		{name: "two args", args: []string{"rom", path}},
		{name: "four args", args: []string{"rom", path, "4", "extra"}},
		{name: "not an integer", args: []string{"rom", path, "big"}, wantStderr: "Error: invalid length: \"big\" is not an integer\n"},
		{name: "hex length", args: []string{"rom", path, "0x10"}, wantStderr: "Error: invalid length: \"0x10\" is not an integer\n"},
		{name: "bad log level", args: []string{"--log-level", "loud", "rom", path, "4"}, wantStderr: "Error: invalid logging level: loud (allowed: debug, info, warn, error)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execPadder(tt.args...)
			assert.Equal(t, 1, code)
			assert.Equal(t, "Usage: padder <name> <input.bin> <length>\n", stdout)
			assert.Equal(t, tt.wantStderr, stderr)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, []byte{1}, got, "usage errors must not touch the file")
		})
	}
}

func TestPadder_UnknownFlag(t *testing.T) {
	code, stdout, stderr := execPadder("--bogus", "rom", "x.bin", "4")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Usage: padder <name> <input.bin> <length>\n", stdout)
	assert.Contains(t, stderr, "unknown flag: --bogus")
}

func TestPadder_MissingFile(t *testing.T) {
	code, stdout, stderr := execPadder("rom", filepath.Join(t.TempDir(), "missing.bin"), "8")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: failed to read")
}

func TestPadder_LogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.bin")
	logPath := filepath.Join(dir, "pad.log")
	require.NoError(t, os.WriteFile(path, []byte{1}, 0644))

	code, _, stderr := execPadder("--log-level", "debug", "--log-file", logPath, "rom", path, "2")
	require.Equal(t, 0, code, stderr)

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "msg=\"pad requested\"")
	assert.Contains(t, string(logs), "name=rom")
	assert.Contains(t, string(logs), "msg=\"padded file\"")
}

func TestPadder_DashArguments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.bin")
	require.NoError(t, os.WriteFile(path, []byte{1}, 0644))

	t.Run("negative length", func(t *testing.T) {
		code, stdout, stderr := execPadder("rom", path, "-1")
		assert.Equal(t, 1, code)
		assert.Equal(t, "Usage: padder <name> <input.bin> <length>\n", stdout)
		assert.Equal(t, "Error: invalid length: -1 is negative\n", stderr)
	})

	t.Run("dash name", func(t *testing.T) {
		code, _, stderr := execPadder("-rom", path, "2")
		require.Equal(t, 0, code, stderr)
	})

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0}, got)
}

func TestPadder_HugeLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.bin")
	require.NoError(t, os.WriteFile(path, []byte{1}, 0644))

	code, stdout, stderr := execPadder("rom", path, "9223372036854775807")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Usage: padder <name> <input.bin> <length>\n", stdout)
	assert.Equal(t, "Error: invalid length: 9223372036854775807 exceeds the maximum of 1099511627776\n", stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got)
}
