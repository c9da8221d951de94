package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/ajroetker/go-valarray/hwy"
	"github.com/ajroetker/go-valarray/internal/config"
	"github.com/ajroetker/go-valarray/internal/timer"
)

// Result holds the timings of one implementation on one scenario and size.
type Result struct {
	Scenario string `yaml:"scenario" json:"scenario"`
	Impl     string `yaml:"impl" json:"impl"`
	Size     int    `yaml:"size" json:"size"`
	Trials   int    `yaml:"trials" json:"trials"`
	Bytes    int64  `yaml:"bytes" json:"bytes"`

	// Times in seconds.
	Total float64 `yaml:"total" json:"total"`
	Mean  float64 `yaml:"mean" json:"mean"`
	Min   float64 `yaml:"min" json:"min"`
	Max   float64 `yaml:"max" json:"max"`

	Verified  bool    `yaml:"verified" json:"verified"`
	MaxRelErr float64 `yaml:"max_rel_err" json:"max_rel_err"`
}

// Report is the outcome of a benchmark run.
type Report struct {
	RunID    string    `yaml:"run_id" json:"run_id"`
	Started  time.Time `yaml:"started" json:"started"`
	GOARCH   string    `yaml:"goarch" json:"goarch"`
	CPULevel string    `yaml:"cpu_level" json:"cpu_level"`
	Native   string    `yaml:"native" json:"native"`
	Results  []Result  `yaml:"results" json:"results"`
}

// Runner executes a configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner validates cfg and returns a Runner logging to logger.
// A nil logger discards output.
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run times every selected implementation on every selected scenario and
// size, sequentially. It stops at the first error or when ctx is done.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	impls, err := SelectImpls(r.cfg.Impls)
	if err != nil {
		return nil, err
	}
	scenarios, err := SelectScenarios(r.cfg.Scenarios)
	if err != nil {
		return nil, err
	}

	var native hwy.Native
	report := &Report{
		RunID:    uuid.NewString(),
		Started:  time.Now(),
		GOARCH:   runtime.GOARCH,
		CPULevel: hwy.CurrentName(),
		Native:   native.Name(),
	}
	r.logger.Info("benchmark started", "run_id", report.RunID, "config", r.cfg.String())

	for _, sc := range scenarios {
		for _, size := range r.cfg.Sizes {
			var ref []float64
			if r.cfg.Verify {
				ref = sc.Reference(size)
			}
			for _, im := range impls {
				res, err := r.runOne(ctx, im, sc, size, ref)
				if err != nil {
					return nil, err
				}
				report.Results = append(report.Results, res)
			}
		}
	}
	r.logger.Info("benchmark finished", "run_id", report.RunID, "results", len(report.Results))
	return report, nil
}

func (r *Runner) runOne(ctx context.Context, im Impl, sc Scenario, size int, ref []float64) (Result, error) {
	k, err := im.Prepare(sc, size)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Scenario: sc.Name,
		Impl:     im.Name,
		Size:     size,
		Trials:   r.cfg.Trials,
		Bytes:    k.Bytes,
		Min:      math.Inf(1),
	}
	var tm timer.Timer
	for trial := range r.cfg.Trials {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		tm.Start()
		err := k.Run()
		tm.Stop()
		if err != nil {
			return Result{}, fmt.Errorf("%s/%s n=%d trial %d: %w", sc.Name, im.Name, size, trial, err)
		}
		secs := tm.Elapsed()
		res.Total += secs
		res.Min = min(res.Min, secs)
		res.Max = max(res.Max, secs)
	}
	res.Mean = res.Total / float64(r.cfg.Trials)

	if ref != nil {
		got, err := k.Result()
		if err != nil {
			return Result{}, fmt.Errorf("%s/%s n=%d: read result: %w", sc.Name, im.Name, size, err)
		}
		res.MaxRelErr, err = Verify(got, ref, k.Tolerance)
		if err != nil {
			return Result{}, fmt.Errorf("%s/%s n=%d: %w", sc.Name, im.Name, size, err)
		}
		res.Verified = true
	}

	r.logger.Debug("implementation timed",
		"scenario", sc.Name, "impl", im.Name, "size", size,
		"mean", res.Mean, "max_rel_err", res.MaxRelErr)
	return res, nil
}

// Verify compares got against ref element by element and returns the
// largest relative error. An error wrapping ErrVerification reports the
// first element exceeding tol.
func Verify(got []float32, ref []float64, tol float64) (float64, error) {
	if len(got) != len(ref) {
		return 0, fmt.Errorf("%w: %d values, want %d", ErrVerification, len(got), len(ref))
	}
	var worst float64
	for i, want := range ref {
		diff := math.Abs(float64(got[i]) - want)
		rel := diff
		if want != 0 {
			rel = diff / math.Abs(want)
		}
		if math.IsNaN(rel) || rel > tol {
			return rel, fmt.Errorf("%w: element %d = %g, want %g (relative error %g > %g)",
				ErrVerification, i, got[i], want, rel, tol)
		}
		worst = max(worst, rel)
	}
	return worst, nil
}
