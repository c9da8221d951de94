package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-valarray/internal/bench"
	"github.com/ajroetker/go-valarray/internal/config"
)

var tableColumns = []string{
	"scenario", "impl", "size", "mean", "min", "max", "throughput", "relative", "max rel err",
}

func writeReport(w io.Writer, report *bench.Report, format string) error {
	switch format {
	case config.FormatTable:
		return writeTable(w, report)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeTable(w io.Writer, report *bench.Report) error {
	fmt.Fprintf(w, "run %s  %s  cpu=%s native=%s\n\n",
		report.RunID, report.Started.Format(time.RFC3339), report.CPULevel, report.Native)

	title := cases.Title(language.English)
	headings := make([]string, len(tableColumns))
	for i, c := range tableColumns {
		headings[i] = title.String(c)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(headings, "\t")+"\t")

	// Relative times are against the first implementation timed for the
	// same scenario and size.
	var baseline float64
	for i, r := range report.Results {
		if i == 0 || r.Scenario != report.Results[i-1].Scenario || r.Size != report.Results[i-1].Size {
			baseline = r.Mean
		}
		relative := "-"
		if baseline > 0 {
			relative = fmt.Sprintf("%.2fx", r.Mean/baseline)
		}
		relErr := "-"
		if r.Verified {
			relErr = fmt.Sprintf("%.2e", r.MaxRelErr)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Scenario, r.Impl, humanize.Comma(int64(r.Size)),
			formatSeconds(r.Mean), formatSeconds(r.Min), formatSeconds(r.Max),
			throughput(r.Bytes, r.Mean), relative, relErr)
	}
	return tw.Flush()
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}

// throughput formats the bytes touched per second.
func throughput(bytes int64, secs float64) string {
	if secs <= 0 || bytes <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(float64(bytes)/secs)) + "/s"
}
