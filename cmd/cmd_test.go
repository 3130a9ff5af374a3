package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ui"
)

// execute runs the root command with args and returns its stdout. Commands
// share global flag state, so these tests are not parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestCommands_Registered(t *testing.T) {
	want := []string{"chart", "houses", "hd", "ziwei", "transit", "batch"}
	have := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("expected %q subcommand to be registered on rootCmd", name)
		}
	}
}

func TestRootFlags(t *testing.T) {
	for _, flag := range []string{"config", "verbose", "tz", "lat", "lon", "house-system", "obliquity", "placidus-iterations", "json"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent flag %q", flag)
		}
	}
	for _, flag := range []string{"out", "workers", "watch"} {
		if batchCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected batch flag %q", flag)
		}
	}
}

func TestChart_JSON(t *testing.T) {
	out, err := execute(t, "chart", "1990-05-15", "14:00", "--json", "--name", "alice", "--gender", "f")
	require.NoError(t, err)

	var got struct {
		JD         float64               `json:"jd"`
		Input      struct{ Name string } `json:"input"`
		Placements []struct {
			Body  string `json:"body"`
			House int    `json:"house"`
		} `json:"placements"`
		ZiWei   map[string]any   `json:"ziwei"`
		Decades []map[string]any `json:"decades"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	wantJD, err := ephemeris.JulianDate("1990-05-15", "14:00", 8)
	require.NoError(t, err)
	assert.InDelta(t, wantJD, got.JD, 1e-9)
	assert.Equal(t, "alice", got.Input.Name)
	assert.Len(t, got.Placements, len(ephemeris.ChartBodies))
	assert.NotNil(t, got.ZiWei)
	assert.Len(t, got.Decades, 12)
}

func TestChart_Terminal(t *testing.T) {
	out, err := execute(t, "chart", "1990-05-15", "--house-system", "whole")
	require.NoError(t, err)
	assert.Contains(t, out, "Houses (whole)")
	assert.Contains(t, out, "Human Design")
}

func TestChart_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad date", []string{"chart", "1990-02-30"}, "invalid date"},
		{"bad time", []string{"chart", "1990-05-15", "7pm"}, "invalid time"},
		{"bad house system", []string{"chart", "1990-05-15", "--house-system", "koch"}, "unknown house system"},
		{"bad gender", []string{"chart", "1990-05-15", "--gender", "x"}, "invalid gender"},
		{"no args", []string{"chart"}, "accepts between 1 and 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHouses_JSON(t *testing.T) {
	out, err := execute(t, "houses", "2000-01-01", "12:00", "--tz", "0", "--lat", "51.48", "--lon", "0", "--house-system", "equal", "--json")
	require.NoError(t, err)

	var h struct {
		System string      `json:"system"`
		Asc    float64     `json:"asc"`
		Cusps  [12]float64 `json:"cusps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &h))
	assert.Equal(t, "equal", h.System)
	assert.Equal(t, h.Asc, h.Cusps[0])
}

func TestHD_JSON(t *testing.T) {
	out, err := execute(t, "hd", "1990-05-15", "14:00", "--json")
	require.NoError(t, err)

	var hd map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &hd))
	assert.NotEmpty(t, hd["type"])
	assert.NotEmpty(t, hd["profile"])
	assert.Len(t, hd["personality"], 13)
}

func TestHD_RejectsOutOfRangeOffset(t *testing.T) {
	_, err := execute(t, "hd", "1990-05-15", "14:00", "--tz", "20")
	require.Error(t, err)
	assert.ErrorIs(t, err, natal.ErrInvalidOffset)
}

func TestZiWei_OutsideTable(t *testing.T) {
	out, err := execute(t, "ziwei", "1850-01-01", "10:00")
	require.NoError(t, err)
	assert.Contains(t, out, ui.InsufficientData)

	out, err = execute(t, "ziwei", "1850-01-01", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"message": "`+ui.InsufficientData+`"`)
	assert.Contains(t, out, `"chart": null`)
}

func TestZiWei_Terminal(t *testing.T) {
	out, err := execute(t, "ziwei", "1990-05-15", "14:00")
	require.NoError(t, err)
	assert.Contains(t, out, "命宮")
	assert.Contains(t, out, "庚午")
}

func TestTransit_JSON(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { now = orig }()

	out, err := execute(t, "transit", "1990-05-15", "14:00", "--json")
	require.NoError(t, err)

	var tr struct {
		JD      float64          `json:"jd"`
		Aspects []map[string]any `json:"aspects"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.InDelta(t, 2458850.0, tr.JD, 1e-9)
	for _, a := range tr.Aspects {
		assert.Equal(t, true, a["transit"])
	}
}

func TestBatch_WritesOutFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "charts.toml")
	content := "[[chart]]\nname = \"a\"\ndate = \"1990-05-15\"\ntime = \"14:00\"\n\n" +
		"[[chart]]\nname = \"b\"\ndate = \"1850-01-01\"\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))
	outPath := filepath.Join(dir, "out.jsonl")

	stdout, err := execute(t, "batch", in, "--out", outPath, "--workers", "2")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "a", first["name"])
	assert.Equal(t, "b", second["name"])
	assert.Equal(t, first["run"], second["run"])
	chart := second["chart"].(map[string]any)
	assert.Nil(t, chart["ziwei"])
}

func TestBatch_InvalidFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "charts.toml")
	require.NoError(t, os.WriteFile(in, []byte("[[chart]]\nname = \"a\"\n"), 0o644))

	_, err := execute(t, "batch", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date: required field missing")
}

func TestBatch_LogFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "charts.yaml")
	content := "chart:\n  - name: a\n    date: \"1990-05-15\"\n    time: \"14:00\"\n"
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))
	logPath := filepath.Join(dir, "batch.log")

	_, err := execute(t, "batch", in, "--log", logPath, "--verbose", "--out", filepath.Join(dir, "out.jsonl"))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	var found bool
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "batch complete" {
			found = true
			assert.EqualValues(t, 1, entry["charts"])
		}
	}
	assert.True(t, found, "batch complete not logged:\n%s", data)
}
