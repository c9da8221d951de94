// Package config loads the valbench benchmark configuration.
//
// Values come from three layers, later ones winning:
//
//  1. Built-in defaults (LoadDefaults)
//  2. A YAML file (LoadFromFile)
//  3. VALBENCH_* environment variables (ApplyEnvVars)
//
// Command-line flags are applied on top by the CLI.
//
// Example YAML:
//
//	sizes: [1000, 1000000]
//	trials: 20
//	impls: [naive, loop, expr/sse2, expr/avx2]
//	scenarios: [dot, length]
//	format: table
//	verify: true
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by Validate.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Config controls a benchmark run.
type Config struct {
	// Sizes lists the array lengths to benchmark.
	Sizes []int `yaml:"sizes" json:"sizes"`

	// Trials is the number of timed repetitions per size and implementation.
	Trials int `yaml:"trials" json:"trials"`

	// Impls names the implementations to time, e.g. "naive", "loop",
	// "lanes/sse2" or "expr/avx2".
	Impls []string `yaml:"impls" json:"impls"`

	// Scenarios names the computations to time: "dot" and/or "length".
	Scenarios []string `yaml:"scenarios" json:"scenarios"`

	// Format selects the report encoding: table, yaml or json.
	Format string `yaml:"format" json:"format"`

	// Verify checks every result against a float64 reference.
	Verify bool `yaml:"verify" json:"verify"`
}

// LoadDefaults returns the built-in configuration: one million elements,
// 100 trials, every implementation and both scenarios.
func LoadDefaults() *Config {
	return &Config{
		Sizes:  []int{1_000_000},
		Trials: 100,
		Impls: []string{
			"naive", "loop", "lanes/native",
			"expr/scalar", "expr/sse2", "expr/avx2", "expr/neon",
		},
		Scenarios: []string{"dot", "length"},
		Format:    FormatTable,
		Verify:    true,
	}
}

// LoadFromFile returns the defaults overlaid with the YAML file at path.
// A missing file is not an error.
func LoadFromFile(path string) (*Config, error) {
	cfg := LoadDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file struct {
		Sizes     []int    `yaml:"sizes"`
		Trials    int      `yaml:"trials"`
		Impls     []string `yaml:"impls"`
		Scenarios []string `yaml:"scenarios"`
		Format    string   `yaml:"format"`
		Verify    *bool    `yaml:"verify"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(file.Sizes) > 0 {
		cfg.Sizes = file.Sizes
	}
	if file.Trials != 0 {
		cfg.Trials = file.Trials
	}
	if len(file.Impls) > 0 {
		cfg.Impls = file.Impls
	}
	if len(file.Scenarios) > 0 {
		cfg.Scenarios = file.Scenarios
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	if file.Verify != nil {
		cfg.Verify = *file.Verify
	}
	return cfg, nil
}

// ApplyEnvVars overrides cfg from VALBENCH_SIZES, VALBENCH_TRIALS,
// VALBENCH_IMPLS, VALBENCH_SCENARIOS, VALBENCH_FORMAT and VALBENCH_VERIFY.
// Unparseable values are ignored.
func ApplyEnvVars(cfg *Config) {
	if sizes, err := ParseSizes(os.Getenv("VALBENCH_SIZES")); err == nil && len(sizes) > 0 {
		cfg.Sizes = sizes
	}
	cfg.Trials = getEnvInt("VALBENCH_TRIALS", cfg.Trials)
	cfg.Impls = getEnvStringSlice("VALBENCH_IMPLS", cfg.Impls)
	cfg.Scenarios = getEnvStringSlice("VALBENCH_SCENARIOS", cfg.Scenarios)
	cfg.Format = getEnv("VALBENCH_FORMAT", cfg.Format)
	cfg.Verify = getEnvBool("VALBENCH_VERIFY", cfg.Verify)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("invalid size: %d", n)
		}
	}
	if c.Trials <= 0 {
		return fmt.Errorf("invalid trials: %d", c.Trials)
	}
	if len(c.Impls) == 0 {
		return fmt.Errorf("no implementations configured")
	}
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("no scenarios configured")
	}
	switch c.Format {
	case FormatTable, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("invalid format: %q (want table, yaml or json)", c.Format)
	}
	return nil
}

// String returns a one-line summary suitable for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Sizes: %v, Trials: %d, Impls: %s, Scenarios: %s, Format: %s, Verify: %v}",
		c.Sizes, c.Trials, strings.Join(c.Impls, ","), strings.Join(c.Scenarios, ","), c.Format, c.Verify)
}

// ParseSizes parses a comma-separated list of sizes. Underscores are
// allowed as digit separators ("1_000_000"). An empty string yields nil.
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		sizes = append(sizes, int(n))
	}
	return sizes, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

func getEnvStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		parts := strings.Split(val, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultVal
}
