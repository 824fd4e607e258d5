package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/camrig"
	"github.com/phanxgames/camrig/preset"
)

const followPreset = `
name = "follow"

[[driver]]
kind = "position"
position = [0.0, 2.0, 6.0]

[[driver]]
kind = "smooth"
position_smoothness = 0.5
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { camrig.SetLogger(nil) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rig.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, _, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "rigsim version test-version-1.0.0")
}

func TestRunCmd_TextOutput(t *testing.T) {
	out, _, err := execute(t, "run", "--preset", writePreset(t, followPreset), "--frames", "3")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "frame    1"))
	assert.Contains(t, lines[2], "pos=(  0.0000   2.0000   6.0000)")
}

func TestRunCmd_JSONOutput(t *testing.T) {
	out, _, err := execute(t, "run",
		"--preset", writePreset(t, followPreset),
		"--frames", "30", "--dt", "0.1",
		"--velocity", "1,0,0",
		"--format", "json")

	require.NoError(t, err)

	var records []frameRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r frameRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		records = append(records, r)
	}
	require.Len(t, records, 30)

	last := records[len(records)-1]
	assert.Equal(t, 30, last.Frame)
	assert.InDelta(t, 3.0, last.Time, 1e-9)
	// The smoothed camera trails the moving anchor.
	assert.Greater(t, last.Position[0], 2.0)
	assert.Less(t, last.Position[0], 3.0)
	assert.InDelta(t, 2.0, last.Position[1], 1e-9)
	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i].Position[0], records[i-1].Position[0])
	}
}

func TestRunCmd_DefaultsToExample(t *testing.T) {
	out, _, err := execute(t, "run", "--frames", "2", "--format", "json")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestRunCmd_LeftHandedOverride(t *testing.T) {
	body := `
[[driver]]
kind = "yaw_pitch"
`
	out, _, err := execute(t, "run", "--preset", writePreset(t, body),
		"--frames", "1", "--format", "json", "--handedness", "left")

	require.NoError(t, err)
	var r frameRecord
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 1.0, r.Forward[2], 1e-9)
}

func TestRunCmd_Errors(t *testing.T) {
	path := writePreset(t, followPreset)
	yawOnly := writePreset(t, "[[driver]]\nkind = \"yaw_pitch\"\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"run", "--preset", path, "--format", "xml"}, "unknown format"},
		{"negative frames", []string{"run", "--preset", path, "--frames=-1"}, "--frames"},
		{"short velocity", []string{"run", "--preset", path, "--velocity", "1,2"}, "3 components"},
		{"bad handedness", []string{"run", "--preset", path, "--handedness", "up"}, "handedness"},
		{"no mover", []string{"run", "--preset", yawOnly, "--velocity", "1,0,0"}, "position or glide"},
		{"missing file", []string{"run", "--preset", filepath.Join(t.TempDir(), "nope.toml")}, "load preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunCmd_Verbose(t *testing.T) {
	_, errOut, err := execute(t, "run", "--preset", writePreset(t, followPreset), "--frames", "1", "-v")

	require.NoError(t, err)
	assert.Contains(t, errOut, "preset built")
	assert.Contains(t, errOut, "name=follow")
}

func TestValidateCmd(t *testing.T) {
	good := writePreset(t, followPreset)
	bad := writePreset(t, "[[driver]]\nkind = \"orbit\"\n")

	out, errOut, err := execute(t, "validate", good, bad)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 presets invalid")
	assert.Contains(t, out, good+": ok (position -> smooth)")
	assert.Contains(t, errOut, "unknown driver kind")
}

func TestValidateCmd_WatchStopsOnCancel(t *testing.T) {
	path := writePreset(t, followPreset)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate", "--watch", path})

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), path+": ok (position -> smooth)")
}

func TestValidateCmd_WatchSinglePreset(t *testing.T) {
	a, b := writePreset(t, followPreset), writePreset(t, followPreset)

	_, _, err := execute(t, "validate", "--watch", a, b)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one preset")
}

func TestValidateCmd_RequiresArg(t *testing.T) {
	_, _, err := execute(t, "validate")

	assert.Error(t, err)
}

func TestExampleCmd_IsValidPreset(t *testing.T) {
	out, _, err := execute(t, "example")
	require.NoError(t, err)

	p, err := preset.Parse([]byte(out))

	require.NoError(t, err)
	assert.Equal(t, preset.Example().Kinds(), p.Kinds())
}
