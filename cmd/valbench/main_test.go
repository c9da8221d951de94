package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-valarray/internal/bench"
	"github.com/ajroetker/go-valarray/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VALBENCH_SIZES", "VALBENCH_TRIALS", "VALBENCH_IMPLS",
		"VALBENCH_SCENARIOS", "VALBENCH_FORMAT", "VALBENCH_VERIFY",
	} {
		t.Setenv(k, "")
	}
}

func parsedRunCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := newRunCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := loadConfig(parsedRunCmd(t))
	require.NoError(t, err)
	assert.Equal(t, config.LoadDefaults(), cfg)
}

func TestLoadConfigPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "valbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [10]\ntrials: 7\nformat: yaml\n"), 0o644))

	t.Run("file", func(t *testing.T) {
		cfg, err := loadConfig(parsedRunCmd(t, "--config", path))
		require.NoError(t, err)
		assert.Equal(t, []int{10}, cfg.Sizes)
		assert.Equal(t, 7, cfg.Trials)
		assert.Equal(t, config.FormatYAML, cfg.Format)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("VALBENCH_TRIALS", "3")
		cfg, err := loadConfig(parsedRunCmd(t, "--config", path))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Trials)
		assert.Equal(t, []int{10}, cfg.Sizes)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("VALBENCH_TRIALS", "3")
		cfg, err := loadConfig(parsedRunCmd(t,
			"--config", path, "--trials", "2", "--sizes", "4,8",
			"--impl", "loop,expr/sse2", "--scenario", "dot",
			"--format", "json", "--verify=false"))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Trials)
		assert.Equal(t, []int{4, 8}, cfg.Sizes)
		assert.Equal(t, []string{"loop", "expr/sse2"}, cfg.Impls)
		assert.Equal(t, []string{"dot"}, cfg.Scenarios)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.False(t, cfg.Verify)
	})
}

func TestLoadConfigInvalid(t *testing.T) {
	clearEnv(t)
	_, err := loadConfig(parsedRunCmd(t, "--trials", "0"))
	assert.Error(t, err)

	_, err = loadConfig(parsedRunCmd(t, "--format", "xml"))
	assert.Error(t, err)
}

func sampleReport() *bench.Report {
	return &bench.Report{
		RunID:    "3f1c2d4e-0000-4000-8000-000000000000",
		Started:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		GOARCH:   "amd64",
		CPULevel: "avx2",
		Native:   "avx2",
		Results: []bench.Result{
			{Scenario: "dot", Impl: "naive", Size: 1_000_000, Trials: 2, Bytes: 36_000_000,
				Total: 0.02, Mean: 0.01, Min: 0.009, Max: 0.011, Verified: true},
			{Scenario: "dot", Impl: "expr/avx2", Size: 1_000_000, Trials: 2, Bytes: 36_000_000,
				Total: 0.005, Mean: 0.0025, Min: 0.002, Max: 0.003, Verified: true, MaxRelErr: 1e-7},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, sampleReport(), config.FormatTable))
	out := buf.String()

	assert.Contains(t, out, "Scenario")
	assert.Contains(t, out, "Max Rel Err")
	assert.Contains(t, out, "1,000,000")
	assert.Contains(t, out, "expr/avx2")
	assert.Contains(t, out, "0.25x")
	assert.Contains(t, out, "1.00x")
	assert.Contains(t, out, "10ms")
	assert.Contains(t, out, "/s")
}

func TestWriteStructuredReports(t *testing.T) {
	report := sampleReport()

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, report, config.FormatJSON))
		var got bench.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report.RunID, got.RunID)
		assert.Len(t, got.Results, 2)
		assert.Equal(t, "expr/avx2", got.Results[1].Impl)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, report, config.FormatYAML))
		assert.Contains(t, buf.String(), "run_id: "+report.RunID)
		var got bench.Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report.Results[0].Mean, got.Results[0].Mean)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, writeReport(&bytes.Buffer{}, report, "xml"))
	})
}

func TestWriteBackends(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBackends(&buf, cpu.Features{Architecture: "amd64", HasSSE2: true}))
	out := buf.String()
	for _, name := range []string{"scalar", "sse2", "avx2", "neon"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "preferred: sse2")
}

func TestRunCommand(t *testing.T) {
	clearEnv(t)
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"run", "--sizes", "17", "--trials", "2", "--impl", "loop,expr/scalar", "--format", "json"})
	require.NoError(t, root.Execute())

	var report bench.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Results, 4)
	for _, r := range report.Results {
		assert.True(t, r.Verified, "%s/%s", r.Scenario, r.Impl)
	}
	assert.True(t, strings.Contains(stderr.String(), "benchmark started"))
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "valbench v"+version)
}
